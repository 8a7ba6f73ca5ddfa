// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Scanner's operations.
	Config struct {
		// Logger for Scanner messages.
		//
		// Preferring a public field to allow for sharing.
		Logger     logrus.FieldLogger
		Vocabulary Vocabulary
		Debug      bool
	}

	// Option defines the Scanner functional option type.
	Option func(*Config)
)

var defLogger = logrus.New()

// DefaultConfig obtains the package's default Scanner configuration.
func DefaultConfig() *Config {
	return &Config{
		Logger:     defLogger,
		Vocabulary: Current,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = defLogger
	}
	if _, ok := tables[c.Vocabulary]; !ok {
		c.Logger.Warnf("%v (%d), using %s", ErrUnknownVocabulary, int(c.Vocabulary), Current)
		c.Vocabulary = Current
	}
}

// WithConfig replaces the configuration wholesale.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithVocabulary configures the word lists the Scanner recognizes.
func WithVocabulary(v Vocabulary) Option { return func(c *Config) { c.Vocabulary = v } }
