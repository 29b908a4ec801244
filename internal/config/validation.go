package config

import (
	"strings"

	"git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/elvtdocs/internal/framework"
)

// normalize canonicalizes enum fields in place and rejects values that
// cannot be used.
func (c *Config) normalize() error {
	c.DocsDir = strings.TrimSpace(c.DocsDir)
	if c.DocsDir == "" {
		return errors.ConfigError("docs_dir must not be empty").Build()
	}
	c.Output.Directory = strings.TrimSpace(c.Output.Directory)
	if c.Output.Directory == "" {
		return errors.ConfigError("output.directory must not be empty").Build()
	}

	if c.Output.Format == "" {
		c.Output.Format = OutputFormatJSON
	}
	format, err := outputFormatNormalizer.NormalizeWithValidation(string(c.Output.Format))
	if err != nil {
		return errors.ConfigError("invalid output.format").
			WithCause(err).
			WithContext("valid", outputFormatNormalizer.ValidValues()).
			Build()
	}
	c.Output.Format = format

	if len(c.Frameworks) == 0 {
		c.Frameworks = framework.All()
	}
	raw := make([]string, len(c.Frameworks))
	for i, fw := range c.Frameworks {
		raw[i] = string(fw)
	}
	ids, err := framework.ParseList(raw)
	if err != nil {
		return errors.ConfigError("invalid frameworks list").WithCause(err).Build()
	}
	c.Frameworks = ids

	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	level, err := logLevelNormalizer.NormalizeWithValidation(string(c.Logging.Level))
	if err != nil {
		return errors.ConfigError("invalid logging.level").WithCause(err).Build()
	}
	c.Logging.Level = level
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))

	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = Default().Server.Addr
	}
	return nil
}
