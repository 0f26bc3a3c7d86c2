package config

import (
	"errors"
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvBotToken    = "TELEGRAM_BOT_TOKEN"
	EnvReceiverID  = "TELEGRAM_RECEIVER_ID"
	EnvAPIURL      = "TELEGRAM_API_URL"
	EnvPollTimeout = "TELEGRAM_POLL_TIMEOUT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvEnvironment = "ENVIRONMENT"

	DefaultAPIURL      = "https://api.telegram.org"
	DefaultPollTimeout = 10 * time.Second
)

var (
	ErrMissingToken      = errors.New(EnvBotToken + " not set")
	ErrMissingReceiverID = errors.New(EnvReceiverID + " not set")
)

// Mode selects which workflows a run starts.
type Mode int

const (
	ModeBoth Mode = iota
	ModeSendOnly
	ModeReceiveOnly
)

func (m Mode) String() string {
	switch m {
	case ModeSendOnly:
		return "send-only"
	case ModeReceiveOnly:
		return "receive-only"
	default:
		return "both"
	}
}

// Flags holds the raw command-line values before environment fallback.
type Flags struct {
	ID          string
	Token       string
	SendOnly    bool
	ReceiveOnly bool
}

// AppConfig holds all configuration for one run. It is built once and never mutated.
type AppConfig struct {
	ReceiverID    string // validated as int64 only by the sender workflow
	TelegramToken string
	SendOnly      bool
	ReceiveOnly   bool

	APIURL      string
	PollTimeout time.Duration
	LogLevel    string
	Environment string
}

// Mode reports the workflow selection. Send-only is checked first.
func (c *AppConfig) Mode() Mode {
	switch {
	case c.SendOnly:
		return ModeSendOnly
	case c.ReceiveOnly:
		return ModeReceiveOnly
	default:
		return ModeBoth
	}
}

// Load resolves the configuration from flags, falling back to environment
// variables (and a .env file, if present) for empty token and id values.
func Load(flags Flags) (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		ReceiverID:    flags.ID,
		TelegramToken: flags.Token,
		SendOnly:      flags.SendOnly,
		ReceiveOnly:   flags.ReceiveOnly,
	}

	if cfg.TelegramToken == "" {
		cfg.TelegramToken = os.Getenv(EnvBotToken)
		if cfg.TelegramToken == "" {
			return nil, ErrMissingToken
		}
	}
	if cfg.ReceiverID == "" {
		cfg.ReceiverID = os.Getenv(EnvReceiverID)
		if cfg.ReceiverID == "" {
			return nil, ErrMissingReceiverID
		}
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(os.Getenv(EnvAPIURL)), "/")
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	cfg.PollTimeout = DefaultPollTimeout
	if raw := strings.TrimSpace(os.Getenv(EnvPollTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPollTimeout, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid %s: must be positive, got %s", EnvPollTimeout, d)
		}
		cfg.PollTimeout = d
	}

	cfg.LogLevel = strings.ToLower(os.Getenv(EnvLogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv(EnvEnvironment))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
