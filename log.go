package roomplanner

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the logger shared by every component of the editor.
var Log = logrus.New()

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConfigureLogging applies level and formatter. LOG_LEVEL and LOG_FORMAT
// override the config values when set.
func ConfigureLogging(cfg LogConfig) {
	level := cfg.Level
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	format := cfg.Format
	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = env
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	Log.SetOutput(os.Stdout)
}
