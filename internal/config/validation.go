package config

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"sort"
)

func Validate(conf *Application, logFunc func(format string, v ...interface{})) error {
	errs := url.Values{}
	validateServiceConfiguration(errs, conf.Service)
	validateServerConfiguration(errs, conf.Server)
	validatePaystackConfiguration(errs, conf.Paystack)
	validateMailConfiguration(errs, conf.Mail)
	validateBrandConfiguration(errs, conf)
	validateLoggingConfiguration(errs, conf.Logging)

	if len(errs) > 0 {
		logValidationErrorDetails(errs, logFunc)
		return errors.New("configuration values failed to validate, bailing out")
	}

	return nil
}

const baseUrlPattern = "^https?://.*[^/]$"

func validateServiceConfiguration(errs url.Values, c ServiceConfig) {
	if violatesPattern(baseUrlPattern, c.PublicBaseURL) {
		errs.Add("service.public_base_url", "base url must start with http:// or https:// and may not end in a /")
	}
	if c.SuccessRedirectURL != "" && violatesPattern(baseUrlPattern, c.SuccessRedirectURL) {
		errs.Add("service.success_redirect_url", "must be a http(s) url not ending in a /")
	}
	if c.FailureRedirectURL != "" && violatesPattern(baseUrlPattern, c.FailureRedirectURL) {
		errs.Add("service.failure_redirect_url", "must be a http(s) url not ending in a /")
	}
	checkLength(&errs, 1, 256, "service.asset_directory", c.AssetDirectory)
}

func validateServerConfiguration(errs url.Values, c ServerConfig) {
	checkIntValueRange(errs, 1, 65535, "server.port", c.Port)
	checkIntValueRange(errs, 1, 300, "server.read_timeout_seconds", c.ReadTimeout)
	checkIntValueRange(errs, 1, 300, "server.write_timeout_seconds", c.WriteTimeout)
	checkIntValueRange(errs, 1, 300, "server.idle_timeout_seconds", c.IdleTimeout)
}

func validatePaystackConfiguration(errs url.Values, c PaystackConfig) {
	if violatesPattern(baseUrlPattern, c.BaseUrl) {
		errs.Add("paystack.base_url", "base url must start with http:// or https:// and may not end in a /")
	}
	checkLength(&errs, 1, 256, "paystack.secret_key", c.SecretKey)
	if c.AmountLimitMinorUnits < 1 {
		errs.Add("paystack.amount_limit_minor_units", "must be a positive amount in the smallest currency unit")
	}
}

func validateMailConfiguration(errs url.Values, c MailConfig) {
	checkLength(&errs, 1, 256, "mail.api_key", c.ApiKey)
	if _, err := mail.ParseAddress(c.FromAddress); err != nil {
		errs.Add("mail.from_address", "must be a valid email address")
	}
	checkIntValueRange(errs, 1, 10, "mail.max_attempts", c.MaxAttempts)
}

func validateBrandConfiguration(errs url.Values, conf *Application) {
	if len(conf.Brands) == 0 {
		errs.Add("brands", "at least one brand must be configured")
		return
	}

	for key, brand := range conf.Brands {
		checkLength(&errs, 1, 256, fmt.Sprintf("brands.%s.display_name", key), brand.DisplayName)
		checkLength(&errs, 1, 256, fmt.Sprintf("brands.%s.logo_file", key), brand.LogoFile)
		checkLength(&errs, 1, 256, fmt.Sprintf("brands.%s.watermark_file", key), brand.WatermarkFile)
		if _, err := mail.ParseAddress(brand.SupportEmail); err != nil {
			errs.Add(fmt.Sprintf("brands.%s.support_email", key), "must be a valid email address")
		}
	}

	if _, ok := conf.Brands[conf.Service.DefaultBrand]; !ok {
		errs.Add("service.default_brand", "must be the key of a configured brand")
	}
}

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "ERROR"}

func validateLoggingConfiguration(errs url.Values, c LoggingConfig) {
	if notInAllowedValues(allowedSeverities[:], c.Severity) {
		errs.Add("logging.severity", "must be one of DEBUG, INFO, WARN, ERROR")
	}
}

func violatesPattern(pattern string, value string) bool {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return true
	}
	return !matched
}

func checkLength(errs *url.Values, min int, max int, key string, value string) {
	if len(value) < min || len(value) > max {
		errs.Add(key, fmt.Sprintf("%s field must be at least %d and at most %d characters long", key, min, max))
	}
}

func checkIntValueRange(errs url.Values, min int, max int, key string, value int) {
	if value < min || value > max {
		errs.Add(key, fmt.Sprintf("%s field must be an integer at least %d and at most %d", key, min, max))
	}
}

func notInAllowedValues[T comparable](allowed []T, value T) bool {
	return !sliceContains(allowed, value)
}

func sliceContains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

func logValidationErrorDetails(errs url.Values, logFunc func(format string, v ...interface{})) {
	var keys []string
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		val := errs[k]
		logFunc("configuration error: %s: %s", key, val[0])
	}
}
