package configuration

const (
	// ChannelPlaceholder is replaced with the LED index in file paths and command arguments
	ChannelPlaceholder = "%channel%"
	// DutyPlaceholder is replaced with the duty value in command arguments
	DutyPlaceholder = "%duty%"
)

// PwmConfig selects the PWM peripheral, an in-memory peripheral is used if neither is set
type PwmConfig struct {
	File *FilePwmConfig `json:"file,omitempty"`
	Cmd  *CmdPwmConfig  `json:"cmd,omitempty"`
}

type FilePwmConfig struct {
	Path string `json:"path"`
	// Atomic replaces the file instead of writing into it, this does not work for sysfs attributes
	Atomic bool `json:"atomic"`
}

type CmdPwmConfig struct {
	SetDuty *ExecConfig `json:"setDuty"`
	GetDuty *ExecConfig `json:"getDuty,omitempty"`
}

type ExecConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
