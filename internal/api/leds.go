package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/lednice/internal/protocol"
)

type Led struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Subname       string `json:"subname"`
	MaxBrightness int    `json:"maxBrightness"`
	Brightness    int    `json:"brightness"`
}

type Brightness struct {
	Brightness *int `json:"brightness"`
}

type History struct {
	Values []float64 `json:"values"`
	Avg    float64   `json:"avg"`
}

func registerLedEndpoints(rest *echo.Echo, service *restService) {
	group := rest.Group("/led")

	group.GET("/", service.getLeds)
	group.GET("/:"+urlParamId+"/", service.getLed)
	group.GET("/:"+urlParamId+"/brightness/", service.getBrightness)
	group.PUT("/:"+urlParamId+"/brightness/", service.setBrightness)
	group.GET("/:"+urlParamId+"/history/", service.getHistory)
}

// returns a list of all LEDs of the device
func (s *restService) getLeds(c echo.Context) error {
	var leds = []Led{}
	for index := 0; index < s.ledCount; index++ {
		led, ok := s.readLed(uint16(index))
		if !ok {
			continue
		}
		leds = append(leds, led)
	}
	return c.JSONPretty(http.StatusOK, leds, indentationChar)
}

func (s *restService) getLed(c echo.Context) error {
	index, err := parseLedId(c)
	if err != nil {
		return returnBadRequest(c, err)
	}

	led, ok := s.readLed(index)
	if !ok {
		return returnNotFound(c, c.Param(urlParamId))
	}
	return c.JSONPretty(http.StatusOK, led, indentationChar)
}

func (s *restService) getBrightness(c echo.Context) error {
	index, err := parseLedId(c)
	if err != nil {
		return returnBadRequest(c, err)
	}

	brightness, ok := s.readBrightness(index)
	if !ok {
		return returnNotFound(c, c.Param(urlParamId))
	}
	return c.JSONPretty(http.StatusOK, Brightness{Brightness: &brightness}, indentationChar)
}

func (s *restService) setBrightness(c echo.Context) error {
	index, err := parseLedId(c)
	if err != nil {
		return returnBadRequest(c, err)
	}

	var body Brightness
	if err := c.Bind(&body); err != nil {
		return returnBadRequest(c, err)
	}
	if body.Brightness == nil {
		return returnBadRequest(c, errors.New("brightness is missing"))
	}
	if *body.Brightness < 0 || *body.Brightness > 255 {
		return returnBadRequest(c, fmt.Errorf("brightness %d is out of range [0..255]", *body.Brightness))
	}

	result := s.handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandSetLedBrightness, uint16(*body.Brightness), index))
	if result.Kind == protocol.ResultIgnored {
		return returnNotFound(c, c.Param(urlParamId))
	}
	if result.Cause != nil {
		return returnError(c, result.Cause)
	}

	brightness, _ := s.readBrightness(index)
	return c.JSONPretty(http.StatusOK, Brightness{Brightness: &brightness}, indentationChar)
}

func (s *restService) getHistory(c echo.Context) error {
	index, err := parseLedId(c)
	if err != nil {
		return returnBadRequest(c, err)
	}
	if int(index) >= s.ledCount {
		return returnNotFound(c, c.Param(urlParamId))
	}

	var history = History{Values: []float64{}}
	if s.history != nil {
		history.Values = s.history.Values(int(index))
		history.Avg = s.history.Avg(int(index))
	}
	return c.JSONPretty(http.StatusOK, history, indentationChar)
}

func (s *restService) readLed(index uint16) (Led, bool) {
	result := s.handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandGetLedInfo, 0, index))
	info, ok := result.Reply.(protocol.LedInfoReply)
	if !ok {
		return Led{}, false
	}
	brightness, ok := s.readBrightness(index)
	if !ok {
		return Led{}, false
	}
	return Led{
		Id:            int(index),
		Name:          info.LedName.String(),
		Subname:       info.LedSubname.String(),
		MaxBrightness: int(info.MaxBrightness),
		Brightness:    brightness,
	}, true
}

func (s *restService) readBrightness(index uint16) (int, bool) {
	result := s.handler.HandleRequest(protocol.NewVendorRequest(protocol.CommandGetLedBrightness, 0, index))
	reply, ok := result.Reply.(protocol.BrightnessReply)
	if !ok {
		return 0, false
	}
	return int(reply.Brightness), true
}
