package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Usable before InitLogger with logrus defaults.
var Log = logrus.New()

// InitLogger configures Log from a level name. Unknown names fall back to info.
func InitLogger(level string) {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
