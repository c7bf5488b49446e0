package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/lednice/internal/protocol"
)

type DeviceInfo struct {
	LedCount int    `json:"ledCount"`
	Name     string `json:"name"`
}

func registerDeviceEndpoints(rest *echo.Echo, service *restService) {
	group := rest.Group("/device")

	group.GET("/", service.getDevice)
}

func (s *restService) getDevice(c echo.Context) error {
	result := s.handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandGetInfo, 0, 0))
	info, ok := result.Reply.(protocol.InfoReply)
	if !ok {
		return returnError(c, errors.New("device did not answer get_info"))
	}
	return c.JSONPretty(http.StatusOK, DeviceInfo{
		LedCount: int(info.LedCount),
		Name:     info.DevName.String(),
	}, indentationChar)
}
