package pwm

import (
	"errors"
	"strconv"
	"time"

	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/ui"
	"github.com/markusressel/lednice/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdOutput runs an external program to set and read the duty
type CmdOutput struct {
	Config configuration.CmdPwmConfig `json:"config"`
}

func (o *CmdOutput) GetId() string {
	return "cmd"
}

func (o *CmdOutput) SetDuty(channel int, duty uint8) error {
	conf := o.Config.SetDuty

	args := util.ReplacePlaceholders(conf.Args, map[string]string{
		configuration.ChannelPlaceholder: strconv.Itoa(channel),
		configuration.DutyPlaceholder:    strconv.Itoa(int(duty)),
	})

	_, err := util.SafeCmdExecution(conf.Exec, args, cmdTimeout)
	return err
}

func (o *CmdOutput) GetDuty(channel int) (uint8, error) {
	conf := o.Config.GetDuty
	if conf == nil {
		return MaxDutyValue, errors.New("cmd output has no getDuty command")
	}

	args := util.ReplacePlaceholders(conf.Args, map[string]string{
		configuration.ChannelPlaceholder: strconv.Itoa(channel),
	})

	output, err := util.SafeCmdExecution(conf.Exec, args, cmdTimeout)
	if err != nil {
		return MaxDutyValue, err
	}

	duty, err := strconv.ParseFloat(output, 64)
	if err != nil {
		ui.Warning("Unable to read int from command output: %s", conf.Exec)
		return MaxDutyValue, err
	}

	return coerceDuty(int(duty)), nil
}
