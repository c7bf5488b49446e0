package pwm

import (
	"strconv"
	"strings"

	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/ui"
	"github.com/markusressel/lednice/internal/util"
)

// FileOutput writes the duty as a decimal integer, e.g. to a sysfs pwm duty_cycle file
type FileOutput struct {
	Config configuration.FilePwmConfig `json:"config"`
}

func (o *FileOutput) GetId() string {
	return "file"
}

// Path returns the file of the given channel
func (o *FileOutput) Path(channel int) (string, error) {
	filePath := strings.ReplaceAll(o.Config.Path, configuration.ChannelPlaceholder, strconv.Itoa(channel))
	return util.ExpandHomeDir(filePath)
}

func (o *FileOutput) SetDuty(channel int, duty uint8) error {
	filePath, err := o.Path(channel)
	if err != nil {
		return err
	}

	if o.Config.Atomic {
		err = util.WriteIntToFileAtomic(int(duty), filePath)
	} else {
		err = util.WriteIntToFile(int(duty), filePath)
	}
	if err != nil {
		ui.Error("Unable to write to file: %v", filePath)
	}
	return err
}

func (o *FileOutput) GetDuty(channel int) (uint8, error) {
	filePath, err := o.Path(channel)
	if err != nil {
		return MaxDutyValue, err
	}

	value, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return MaxDutyValue, err
	}
	return coerceDuty(value), nil
}
