package config

import "strings"

// normalize expands path fields and fills blank values with defaults so the
// rest of the program never needs to re-check them.
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = ExpandPath(firstNonEmpty(c.Paths.DataDir, defaultDataDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = ExpandPath(firstNonEmpty(c.Paths.LogDir, defaultLogDir)); err != nil {
		return err
	}

	c.Import.Delimiter = firstNonEmpty(strings.TrimSpace(c.Import.Delimiter), defaultDelimiter)
	c.Server.Bind = firstNonEmpty(strings.TrimSpace(c.Server.Bind), defaultServerBind)
	c.Logging.Format = strings.ToLower(firstNonEmpty(strings.TrimSpace(c.Logging.Format), defaultLogFormat))
	c.Logging.Level = strings.ToLower(firstNonEmpty(strings.TrimSpace(c.Logging.Level), defaultLogLevel))
	return nil
}

func firstNonEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
