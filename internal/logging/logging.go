// Package logging builds the process logger. The logger is constructed once
// in the CLI and passed down explicitly; there is no package-level state.
package logging

import "go.uber.org/zap"

// New creates a console logger. Verbose mode enables debug output with the
// development encoder; otherwise only warnings and errors are printed, so
// report rendering on stdout stays clean.
func New(verbose bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// NewNop returns a no-op logger for tests.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
