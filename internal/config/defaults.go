package config

const (
	defaultDataDir          = "~/.local/share/mediadex"
	defaultLogDir           = "~/.local/share/mediadex/logs"
	defaultDelimiter        = ","
	defaultProgressInterval = 500
	defaultServerBind       = "127.0.0.1:8640"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Import: Import{
			Delimiter:        defaultDelimiter,
			ProgressInterval: defaultProgressInterval,
		},
		Server: Server{
			Bind: defaultServerBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
