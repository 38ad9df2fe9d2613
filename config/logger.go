package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(io.Discard)
}

// InitLogger points the logger at the configured log file. The terminal
// belongs to the dashboard, so nothing is ever written to stdout; if the
// file cannot be opened the logger stays silent.
func InitLogger(path string) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		logg.SetOutput(file)
	}
}
