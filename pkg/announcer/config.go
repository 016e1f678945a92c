package announcer

import "time"

// Config holds the environment-driven configuration for an Engine. Load it
// with pkg/config and hand it to NewFromConfig:
//
//	var cfg announcer.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	engine, err := announcer.NewFromConfig(cfg)
type Config struct {
	DebounceWindow time.Duration `env:"ANNOUNCER_DEBOUNCE_WINDOW" envDefault:"100ms"`
	DeliveryHold   time.Duration `env:"ANNOUNCER_DELIVERY_HOLD" envDefault:"0s"`
	DefaultRegions bool          `env:"ANNOUNCER_DEFAULT_REGIONS" envDefault:"true"`
}

// NewFromConfig creates an engine from cfg. Additional options are applied
// after the config-derived ones, so they win on conflict.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	base := []Option{
		WithDebounceWindow(cfg.DebounceWindow),
		WithDeliveryHold(cfg.DeliveryHold),
	}
	if cfg.DefaultRegions {
		base = append(base, WithDefaultRegions())
	}
	return New(append(base, opts...)...)
}
