package commands

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// setupLogging points logrus away from the tty: the screen belongs to the
// game, so logs go to --log-file or nowhere.
func setupLogging() {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}
