package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// A .env file is a development convenience; absence is fine.
var _ = godotenv.Load()

// Configuration variables. These aren't user facing but useful for tuning
// details of the terminal loop; the command line flags take their defaults
// from here.
var (
	EventBuffer = getEnvInt("SNEK_EVENT_BUFFER", 16)
	LogFile     = getEnvStr("SNEK_LOG_FILE", "")
	LogLevel    = getEnvStr("SNEK_LOG_LEVEL", "info")
	Mute        = getEnvBool("SNEK_MUTE", false)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvStr(varName, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}

func getEnvBool(varName string, defaults bool) bool {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	boolVal, err := strconv.ParseBool(val)
	if err != nil {
		return defaults
	}
	return boolVal
}
