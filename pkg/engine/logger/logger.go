// Package logger builds the game's debug logger.
package logger

import (
	"go.uber.org/zap"
)

// New returns a sugared logger writing development-format entries to path.
// An empty path yields a no-op logger so nothing interferes with the game's own output.
func New(path string) (*zap.SugaredLogger, error) {
	if path == "" {
		return zap.NewNop().Sugar(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
