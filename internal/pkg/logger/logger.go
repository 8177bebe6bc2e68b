// Package logger installs the process-wide zap logger.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Init builds a logger for the given environment and installs it as the zap
// global, so packages log through zap.S()/zap.L() without carrying a handle.
func Init(appEnv string) (*zap.Logger, error) {
	var cfg zap.Config
	if isProd(appEnv) {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

func isProd(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}
