// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	stdmail "net/mail"
	"strings"

	"github.com/BurntSushi/toml"
)

type Pop3Settings struct {
	Host                       string
	Port                       int
	UseSsl                     bool
	CheckCertificateRevocation bool
	Username                   string
	Password                   string

	DeleteSpam bool
}

type SmtpSettings struct {
	Host                       string
	Port                       int
	UseSsl                     bool
	CheckCertificateRevocation bool
	Username                   string
	Password                   string

	ForwardTo  string
	SenderName string
}

type Config struct {
	Database string

	ScoreUrl         string
	SpamassassinHost string
	SpamThreshold    float64

	SubjectPrefix string

	IntervalSeconds    int
	MaxBackoffSeconds  int
	DialTimeoutSeconds int

	Pop3Settings Pop3Settings
	SmtpSettings SmtpSettings

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		SpamThreshold:      4.0,
		IntervalSeconds:    60,
		MaxBackoffSeconds:  960,
		DialTimeoutSeconds: 30,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	config.applyPortDefaults()

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyPortDefaults() {
	if c.Pop3Settings.Port == 0 {
		if c.Pop3Settings.UseSsl {
			c.Pop3Settings.Port = 995
		} else {
			c.Pop3Settings.Port = 110
		}
	}

	if c.SmtpSettings.Port == 0 {
		if c.SmtpSettings.UseSsl {
			c.SmtpSettings.Port = 465
		} else {
			c.SmtpSettings.Port = 25
		}
	}
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Pop3Settings.Host, "Pop3Settings.Host must not be empty, set to the hostname of the pop3 server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Pop3Settings.Username, "Pop3Settings.Username must not be empty, set to the username on the pop3 server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Pop3Settings.Password, "Pop3Settings.Password must not be empty, set to the password on the pop3 server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SmtpSettings.Host, "SmtpSettings.Host must not be empty, set to the hostname of the smtp server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SmtpSettings.Username, "SmtpSettings.Username must not be empty, set to the username on the smtp server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SmtpSettings.Password, "SmtpSettings.Password must not be empty, set to the password on the smtp server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SmtpSettings.ForwardTo, "SmtpSettings.ForwardTo must not be empty, set to the destination address"); err != nil {
		return err
	}

	if _, err := stdmail.ParseAddress(c.SmtpSettings.ForwardTo); err != nil {
		return fmt.Errorf("SmtpSettings.ForwardTo is not a valid mail address: %w", err)
	}

	if err := validatePort(c.Pop3Settings.Port, "Pop3Settings.Port"); err != nil {
		return err
	}

	if err := validatePort(c.SmtpSettings.Port, "SmtpSettings.Port"); err != nil {
		return err
	}

	scoreApiSet := len(strings.TrimSpace(c.ScoreUrl)) > 0
	spamassassinSet := len(strings.TrimSpace(c.SpamassassinHost)) > 0
	if scoreApiSet && spamassassinSet {
		return fmt.Errorf("ScoreUrl and SpamassassinHost cannot be set at the same time")
	}

	if c.SpamThreshold <= 0 {
		return fmt.Errorf("SpamThreshold must be greater than zero")
	}

	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("IntervalSeconds must be greater than zero")
	}

	if c.MaxBackoffSeconds < c.IntervalSeconds {
		return fmt.Errorf("MaxBackoffSeconds must not be smaller than IntervalSeconds")
	}

	if c.DialTimeoutSeconds <= 0 {
		return fmt.Errorf("DialTimeoutSeconds must be greater than zero")
	}

	return nil
}

// SpamCheckEnabled reports whether any classifier backend is configured.
func (c *Config) SpamCheckEnabled() bool {
	return len(strings.TrimSpace(c.ScoreUrl)) > 0 || len(strings.TrimSpace(c.SpamassassinHost)) > 0
}

func validatePort(port int, field string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be a valid port number, got %d", field, port)
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
