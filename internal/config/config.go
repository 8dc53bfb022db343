// Configs are loaded from a yaml file that is placed on the server.
// After loading, Validate must be called to make sure the service does
// not come up with an unusable configuration.

package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	Application struct {
		Service  ServiceConfig          `yaml:"service"`
		Server   ServerConfig           `yaml:"server"`
		Paystack PaystackConfig         `yaml:"paystack"`
		Mail     MailConfig             `yaml:"mail"`
		Brands   map[string]BrandConfig `yaml:"brands"`
		Security SecurityConfig         `yaml:"security"`
		Logging  LoggingConfig          `yaml:"logging"`
	}

	ServiceConfig struct {
		Name string `yaml:"name"`
		// PublicBaseURL is the externally reachable base url of this
		// service, used to construct the payment callback url.
		PublicBaseURL      string `yaml:"public_base_url"`
		DefaultBrand       string `yaml:"default_brand"`
		AssetDirectory     string `yaml:"asset_directory"`
		SuccessRedirectURL string `yaml:"success_redirect_url"`
		FailureRedirectURL string `yaml:"failure_redirect_url"`
	}

	ServerConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	PaystackConfig struct {
		BaseUrl   string `yaml:"base_url"`
		SecretKey string `yaml:"secret_key"`
		// AmountLimitMinorUnits is the upper bound for a single
		// transaction in the smallest currency unit. Requests above it
		// are rejected before any call to the gateway is made.
		AmountLimitMinorUnits int64 `yaml:"amount_limit_minor_units"`
	}

	MailConfig struct {
		ApiKey      string `yaml:"api_key"`
		FromAddress string `yaml:"from_address"`
		MaxAttempts int    `yaml:"max_attempts"`
	}

	BrandConfig struct {
		DisplayName   string `yaml:"display_name"`
		LogoFile      string `yaml:"logo_file"`
		WatermarkFile string `yaml:"watermark_file"`
		SupportEmail  string `yaml:"support_email"`
	}

	SecurityConfig struct {
		Fixed FixedTokenConfig `yaml:"fixed_token"`
		Cors  CorsConfig       `yaml:"cors"`
	}

	FixedTokenConfig struct {
		// Api protects the send-invoice endpoint when set. Leave empty
		// to run without token protection (development only).
		Api string `yaml:"api"`
	}

	CorsConfig struct {
		DisableHeaders bool   `yaml:"disable"`
		AllowOrigin    string `yaml:"allow_origin"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
	}
)

func UnmarshalFromYamlConfiguration(reader io.Reader) (*Application, error) {
	d := yaml.NewDecoder(reader)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	applyDefaults(conf)

	return conf, nil
}

func LoadConfiguration(path string) (*Application, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return UnmarshalFromYamlConfiguration(f)
}

func applyDefaults(conf *Application) {
	if conf.Server.Port == 0 {
		conf.Server.Port = 8080
	}
	if conf.Server.ReadTimeout == 0 {
		conf.Server.ReadTimeout = 30
	}
	if conf.Server.WriteTimeout == 0 {
		conf.Server.WriteTimeout = 30
	}
	if conf.Server.IdleTimeout == 0 {
		conf.Server.IdleTimeout = 120
	}
	if conf.Paystack.BaseUrl == "" {
		conf.Paystack.BaseUrl = "https://api.paystack.co"
	}
	if conf.Mail.MaxAttempts == 0 {
		conf.Mail.MaxAttempts = 3
	}
	if conf.Logging.Severity == "" {
		conf.Logging.Severity = "INFO"
	}
}
