// pkg/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log глобальный логгер. До вызова Init пишет в stderr с настройками logrus по умолчанию,
// поэтому системы можно использовать в тестах без инициализации.
var Log = logrus.New()

// Init настраивает глобальный логгер по переменным окружения.
// LOG_LEVEL: уровень (по умолчанию "info"), LOG_FORMAT: "json" или текст.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Silence отключает вывод. Используется в тестах.
func Silence() {
	Log.SetOutput(io.Discard)
}
