// Package logger builds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// New returns a production logger, or a development one when APP_ENV=dev.
func New() *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("APP_ENV") == "dev" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
