package ally

import (
	"fmt"

	"github.com/jiaming2012/ally-invest/src/responses"
	"github.com/jiaming2012/ally-invest/src/utils"
)

type Config struct {
	Credentials Credentials
	AccountID   string
	Format      responses.Format
	BaseURL     string
}

// NewConfigFromEnv reads the ALLY_* variables. The four OAuth values are required;
// the account id is optional and the format and base url have defaults.
func NewConfigFromEnv() (*Config, error) {
	cfg := &Config{}

	required := []struct {
		key string
		dst *string
	}{
		{"ALLY_CONSUMER_KEY", &cfg.Credentials.ConsumerKey},
		{"ALLY_CONSUMER_SECRET", &cfg.Credentials.ConsumerSecret},
		{"ALLY_OAUTH_TOKEN", &cfg.Credentials.Token},
		{"ALLY_OAUTH_SECRET", &cfg.Credentials.TokenSecret},
	}

	for _, r := range required {
		value, err := utils.GetEnv(r.key)
		if err != nil {
			return nil, fmt.Errorf("NewConfigFromEnv: %w", err)
		}
		*r.dst = value
	}

	format, err := responses.ParseFormat(utils.GetEnvOrDefault("ALLY_RESPONSE_FORMAT", string(responses.FormatJSON)))
	if err != nil {
		return nil, fmt.Errorf("NewConfigFromEnv: %w", err)
	}

	cfg.Format = format
	cfg.AccountID = utils.GetEnvOrDefault("ALLY_ACCOUNT_ID", "")
	cfg.BaseURL = utils.GetEnvOrDefault("ALLY_BASE_URL", DefaultBaseURL)

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Credentials.Validate(); err != nil {
		return fmt.Errorf("Config.Validate: %w", err)
	}

	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("Config.Validate: %w", err)
	}

	return nil
}
