package configuration

import (
	"os"
	"time"

	"github.com/markusressel/lednice/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	Device DeviceConfig `json:"device"`
	Pwm    PwmConfig    `json:"pwm"`

	Transport  TransportConfig  `json:"transport"`
	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`

	// HistorySize is the number of brightness values kept per LED
	HistorySize int `json:"historySize"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("lednice")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/lednice/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("device.name", "ds_simple")
	viper.SetDefault("device.clampBrightness", false)
	viper.SetDefault("device.leds", []map[string]interface{}{
		{
			"name":          "led_1",
			"maxBrightness": 255,
		},
	})

	viper.SetDefault("transport.enabled", true)
	viper.SetDefault("transport.listen", "unix:///run/lednice/control.sock")
	viper.SetDefault("transport.timeout", 1*time.Second)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("historySize", 100)
}

// DetectConfigFile reads the config file and returns its path
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// the defaults describe the stock single LED device
			ui.Warning("No config file found, using defaults")
			return ""
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	// load default configuration values
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHooks()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		ListenAddressHookFunc(),
	)
}
