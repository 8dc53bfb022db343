package config

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const validConfig = `service:
  name: 'TestServiceName'
  public_base_url: 'http://localhost:8080'
  default_brand: 'primegraphics'
  asset_directory: 'assets'
  success_redirect_url: 'http://localhost:8000/thank-you'
  failure_redirect_url: 'http://localhost:8000/payment-failed'
server:
  port: 8080
  read_timeout_seconds: 30
  write_timeout_seconds: 40
  idle_timeout_seconds: 120
paystack:
  base_url: 'https://api.paystack.co'
  secret_key: 'sk_test_abcdefghijklmnop'
  amount_limit_minor_units: 50000000
mail:
  api_key: 're_test_key'
  from_address: 'billing@primegraphics.example.com'
  max_attempts: 3
brands:
  primegraphics:
    display_name: 'Prime Graphics'
    logo_file: 'primegraphics-logo.png'
    watermark_file: 'primegraphics-watermark.png'
    support_email: 'support@primegraphics.example.com'
  webicx:
    display_name: 'Webicx'
    logo_file: 'webicx-logo.png'
    watermark_file: 'webicx-watermark.png'
    support_email: 'support@webicx.example.com'
security:
  fixed_token:
    api: 'some-api-token-must-be-long-enough'
  cors:
    disable: true
    allow_origin: 'http://localhost:8000'
logging:
  severity: INFO
`

func TestUnmarshalConfig(t *testing.T) {
	b := bytes.NewBuffer([]byte(validConfig))

	conf, err := UnmarshalFromYamlConfiguration(b)
	require.NoError(t, err)

	logRecording := strings.Builder{}
	logFunc := func(format string, v ...interface{}) {
		logRecording.WriteString(fmt.Sprintf(format, v...))
		logRecording.WriteString("\n")
	}
	err = Validate(conf, logFunc)
	require.Equal(t, "", logRecording.String())
	require.NoError(t, err)

	require.NotNil(t, conf)
	require.Equal(t, "TestServiceName", conf.Service.Name)
	require.Equal(t, "primegraphics", conf.Service.DefaultBrand)
	require.Equal(t, "", conf.Server.BaseAddress)
	require.Equal(t, 8080, conf.Server.Port)
	require.Equal(t, 30, conf.Server.ReadTimeout)
	require.Equal(t, 40, conf.Server.WriteTimeout)
	require.Equal(t, 120, conf.Server.IdleTimeout)
	require.Equal(t, "https://api.paystack.co", conf.Paystack.BaseUrl)
	require.Equal(t, int64(50000000), conf.Paystack.AmountLimitMinorUnits)
	require.Equal(t, 3, conf.Mail.MaxAttempts)
	require.Len(t, conf.Brands, 2)
	require.Equal(t, "Prime Graphics", conf.Brands["primegraphics"].DisplayName)
	require.Equal(t, "some-api-token-must-be-long-enough", conf.Security.Fixed.Api)
	require.True(t, conf.Security.Cors.DisableHeaders)
	require.Equal(t, "INFO", conf.Logging.Severity)
}

func TestUnmarshalConfigAppliesDefaults(t *testing.T) {
	s := []byte(`service:
  name: 'TestServiceName'
`)

	conf, err := UnmarshalFromYamlConfiguration(bytes.NewBuffer(s))
	require.NoError(t, err)

	require.Equal(t, 8080, conf.Server.Port)
	require.Equal(t, 30, conf.Server.ReadTimeout)
	require.Equal(t, 120, conf.Server.IdleTimeout)
	require.Equal(t, "https://api.paystack.co", conf.Paystack.BaseUrl)
	require.Equal(t, 3, conf.Mail.MaxAttempts)
	require.Equal(t, "INFO", conf.Logging.Severity)
}

func TestUnmarshalConfigRejectsUnknownFields(t *testing.T) {
	s := []byte(`service:
  name: 'TestServiceName'
  no_such_field: 42
`)

	conf, err := UnmarshalFromYamlConfiguration(bytes.NewBuffer(s))
	require.Error(t, err)
	require.Nil(t, conf)
}

func TestValidateReportsBrokenConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(conf *Application)
		expectedKey string
	}{
		{
			name: "missing paystack secret",
			mutate: func(conf *Application) {
				conf.Paystack.SecretKey = ""
			},
			expectedKey: "paystack.secret_key",
		},
		{
			name: "amount limit not positive",
			mutate: func(conf *Application) {
				conf.Paystack.AmountLimitMinorUnits = 0
			},
			expectedKey: "paystack.amount_limit_minor_units",
		},
		{
			name: "broken from address",
			mutate: func(conf *Application) {
				conf.Mail.FromAddress = "not-an-address"
			},
			expectedKey: "mail.from_address",
		},
		{
			name: "default brand not configured",
			mutate: func(conf *Application) {
				conf.Service.DefaultBrand = "no-such-brand"
			},
			expectedKey: "service.default_brand",
		},
		{
			name: "no brands at all",
			mutate: func(conf *Application) {
				conf.Brands = nil
			},
			expectedKey: "brands",
		},
		{
			name: "invalid severity",
			mutate: func(conf *Application) {
				conf.Logging.Severity = "LOUD"
			},
			expectedKey: "logging.severity",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf, err := UnmarshalFromYamlConfiguration(bytes.NewBuffer([]byte(validConfig)))
			require.NoError(t, err)

			tc.mutate(conf)

			logRecording := strings.Builder{}
			logFunc := func(format string, v ...interface{}) {
				logRecording.WriteString(fmt.Sprintf(format, v...))
				logRecording.WriteString("\n")
			}

			err = Validate(conf, logFunc)
			require.Error(t, err)
			require.Contains(t, logRecording.String(), tc.expectedKey)
		})
	}
}
