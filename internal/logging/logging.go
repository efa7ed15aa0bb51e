// Package logging builds the command's charmbracelet logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w and, when logFile is set, appending to
// that file too. The returned close func releases the file.
func New(w io.Writer, level string, verbose bool, logFile string) (*log.Logger, func() error, error) {
	out := w
	closer := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		// write to both stderr and file so running interactively still shows logs
		out = io.MultiWriter(w, f)
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{Prefix: "retrieve-seq"})

	if verbose {
		logger.SetLevel(log.DebugLevel)
		return logger, closer, nil
	}

	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info", "":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log_level in config, defaulting to info", "provided", level)
	}

	return logger, closer, nil
}
