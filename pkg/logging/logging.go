package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger = zap.NewNop()

// Options describes the logger to build.
type Options struct {
	Debug      bool   // Development config: console encoding at debug level.
	AppName    string
	AppVersion string
	RunID      string // Correlates every line of one invocation.
	OutputPath string // Defaults to stderr.
}

// Setup builds the process logger, stores it in Logger and installs it as
// zap's global logger. On failure Logger falls back to a no-op logger.
func Setup(opts Options) (*zap.Logger, error) {
	var cfg zap.Config

	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	output := opts.OutputPath
	if output == "" {
		output = "stderr"
	}
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}
	if opts.RunID != "" {
		cfg.InitialFields["runID"] = opts.RunID
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewNop()
		return Logger, err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return Logger, nil
}
