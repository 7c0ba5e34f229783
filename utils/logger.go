package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

// InitLogger menyiapkan dua logger: info ke stdout, warning dan error ke stderr.
// Level yang tidak dikenal jatuh ke info.
func InitLogger(level string) {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	InfoLogger.SetLevel(lvl)
	ErrorLogger.SetLevel(logrus.WarnLevel)
}
