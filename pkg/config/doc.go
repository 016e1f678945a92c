// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Supports a variable-name prefix so several instances of the same
//     component can be configured independently in one process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     scenarios where configuration is critical.
//
// The package deliberately keeps no cache: every Load call reads the current
// process environment, so independently constructed components (and tests
// that mutate the environment) stay isolated from each other.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type EngineConfig struct {
//	    DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW" envDefault:"100ms"`
//	    DeliveryHold   time.Duration `env:"DELIVERY_HOLD" envDefault:"0s"`
//	    LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
// Load the default `.env` file (optional) then populate the struct:
//
//	import "github.com/dmitrymomot/a11ykit/pkg/config"
//
//	func main() {
//	    // Optionally load one or many custom .env files before parsing.
//	    if err := config.LoadEnv("./config/.env" /* more files ... */); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var cfg EngineConfig
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// To scope variables per instance, use LoadWithPrefix:
//
//	var cfg EngineConfig
//	err := config.LoadWithPrefix(&cfg, "ANNOUNCER_")
//	// resolves ANNOUNCER_DEBOUNCE_WINDOW, ANNOUNCER_DELIVERY_HOLD, ...
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
