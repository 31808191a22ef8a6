package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const CONFILE = "config.yml"

// Duration wraps time.Duration so YAML values like "250ms" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type DisplayConfig struct {
	LedsTotal  int  `yaml:"LedsTotal"`
	Brightness int  `yaml:"Brightness"`
	BigLeds    bool `yaml:"BigLeds"`
}

type AnimationConfig struct {
	BaseDelay     Duration `yaml:"BaseDelay"`
	ModeDuration  Duration `yaml:"ModeDuration"`
	StartMode     string   `yaml:"StartMode"`
	StartMirrored bool     `yaml:"StartMirrored"`
}

type HardwareConfig struct {
	Output    string `yaml:"Output"`
	SPIDevice string `yaml:"SPIDevice"`
	GpioPin   int    `yaml:"GpioPin"`
}

type IPCConfig struct {
	SocketPath string `yaml:"SocketPath"`
}

type NightDimConfig struct {
	Enabled   bool    `yaml:"Enabled"`
	Latitude  float64 `yaml:"Latitude"`
	Longitude float64 `yaml:"Longitude"`
	Factor    float64 `yaml:"Factor"`
}

type LoggingConfig struct {
	Level  string `yaml:"Level"`
	Format string `yaml:"Format"`
	File   string `yaml:"File"`
}

type Config struct {
	RealHW    bool            `yaml:"-"`
	Display   DisplayConfig   `yaml:"Display"`
	Animation AnimationConfig `yaml:"Animation"`
	Hardware  HardwareConfig  `yaml:"Hardware"`
	IPC       IPCConfig       `yaml:"IPC"`
	NightDim  NightDimConfig  `yaml:"NightDim"`
	Logging   LoggingConfig   `yaml:"Logging"`
}

func defaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			LedsTotal:  8,
			Brightness: 255,
		},
		Animation: AnimationConfig{
			BaseDelay:    Duration(250 * time.Millisecond),
			ModeDuration: Duration(30 * time.Second),
			StartMode:    "Flash",
		},
		Hardware: HardwareConfig{
			Output:  "spi",
			GpioPin: 18,
		},
		IPC: IPCConfig{
			SocketPath: "/tmp/pmlicht.sock",
		},
		NightDim: NightDimConfig{
			Factor: 0.25,
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
		},
	}
}

// ReadConfig reads and validates the config file. Missing settings
// keep their defaults.
func ReadConfig(cfile string, realhw bool) (*Config, error) {
	f, err := os.Open(cfile)
	if err != nil {
		return nil, fmt.Errorf("opening config file %s: %w", cfile, err)
	}
	defer f.Close()

	conf := defaultConfig()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&conf); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", cfile, err)
	}
	conf.RealHW = realhw
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) Validate() error {
	if c.Display.LedsTotal < 2 {
		return fmt.Errorf("Display.LedsTotal must be at least 2, got %d", c.Display.LedsTotal)
	}
	if c.Display.Brightness < 0 || c.Display.Brightness > 255 {
		return fmt.Errorf("Display.Brightness must be between 0 and 255, got %d", c.Display.Brightness)
	}
	if c.Animation.BaseDelay.Std() <= 0 {
		return fmt.Errorf("Animation.BaseDelay must be positive, got %s", c.Animation.BaseDelay.Std())
	}
	if c.Animation.ModeDuration.Std() <= 0 {
		return fmt.Errorf("Animation.ModeDuration must be positive, got %s", c.Animation.ModeDuration.Std())
	}
	if c.Hardware.Output != "spi" && c.Hardware.Output != "gpio" {
		return fmt.Errorf("Hardware.Output must be \"spi\" or \"gpio\", got %q", c.Hardware.Output)
	}
	if c.IPC.SocketPath == "" {
		return fmt.Errorf("IPC.SocketPath must not be empty")
	}
	if c.NightDim.Enabled {
		if c.NightDim.Factor <= 0 || c.NightDim.Factor > 1 {
			return fmt.Errorf("NightDim.Factor must be in (0, 1], got %g", c.NightDim.Factor)
		}
		if c.NightDim.Latitude < -90 || c.NightDim.Latitude > 90 {
			return fmt.Errorf("NightDim.Latitude must be between -90 and 90, got %g", c.NightDim.Latitude)
		}
		if c.NightDim.Longitude < -180 || c.NightDim.Longitude > 180 {
			return fmt.Errorf("NightDim.Longitude must be between -180 and 180, got %g", c.NightDim.Longitude)
		}
	}
	return nil
}
