package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config carries every recognized option. Credentials and the session
// secret have no defaults on purpose.
type Config struct {
	APIID       string `env:"API_ID,required=true"`
	APIHash     string `env:"API_HASH,required=true"`
	PhoneNumber string `env:"PHONE_NUMBER,required=true"`

	SessionFile   string        `env:"SESSION_FILE,default=persistent_session.jwt"`
	SessionSecret string        `env:"SESSION_SECRET,required=true" validate:"min=16"`
	SessionTTL    time.Duration `env:"SESSION_TTL,default=720h"`

	// BatchSize controls the progress-signal cadence only; it has no
	// effect on the computed statistics.
	BatchSize uint64 `env:"BATCH_SIZE,default=100" validate:"gt=0"`

	LogLevel       string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	DumpDir        string `env:"DUMP_DIR,default=dumps"`
	ReportDir      string `env:"REPORT_DIR,default=."`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=data/history"`
	HistoryLimit   *int   `env:"HISTORY_LIMIT"`
}

// LoadConfig reads the environment and validates the result.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return config, nil
}
