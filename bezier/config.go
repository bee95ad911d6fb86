package bezier

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultFrameInterval = time.Second / 60

type Config struct {
	Division      int           `yaml:"division"`
	Step          float64       `yaml:"step"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
}

func DefaultConfig() Config {
	return Config{
		Division:      DefaultDivision,
		Step:          DefaultStep,
		FrameInterval: DefaultFrameInterval,
		Width:         800,
		Height:        600,
	}
}

// LoadConfig reads a yaml file. Fields missing from the file keep their
// default values.
func LoadConfig(fileName string) (cfg Config, err error) {
	cfg = DefaultConfig()

	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &cfg)
	if err != nil {
		err = fmt.Errorf("parse %s: %w", fileName, err)

		return
	}

	err = cfg.Validate()

	return
}

func (cfg Config) Validate() error {
	if cfg.Division <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDivision, cfg.Division)
	}

	if cfg.Step <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStep, cfg.Step)
	}

	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, cfg.FrameInterval)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, cfg.Width, cfg.Height)
	}

	return nil
}

// SessionOptions converts the config into session options.
func (cfg Config) SessionOptions() []Option {
	return []Option{
		DivisionOption(cfg.Division),
		StepOption(cfg.Step),
	}
}
