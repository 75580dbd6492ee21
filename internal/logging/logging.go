// Copyright (c) The Lottie-Windows Authors
// SPDX-License-Identifier: MPL-2.0

// Package logging configures the process-wide logger. Code throughout the
// repository logs through the stdlib log package with a level tag prefix
// ("[TRACE] ...", "[DEBUG] ..."); this package installs an hclog
// interceptor that parses those tags and filters by the level selected
// through the environment.
package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Environment variables consulted by Setup.
const (
	envLog     = "LOTTIE_LOG"
	envLogFile = "LOTTIE_LOG_PATH"
)

// ValidLevels are the accepted values of LOTTIE_LOG.
var ValidLevels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "OFF"}

var logger hclog.Logger

// Setup initializes the global logger from the environment and routes the
// stdlib log package through it. It is called once, early in main.
func Setup() {
	logger = newHCLogger("lottiegen")
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(logger.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels: true,
	}))
}

// HCLogger returns the global hclog logger, for subsystems that want
// structured logging rather than the stdlib bridge.
func HCLogger() hclog.Logger {
	if logger == nil {
		Setup()
	}
	return logger
}

func newHCLogger(name string) hclog.Logger {
	logOutput := io.Writer(os.Stderr)
	if logPath := os.Getenv(envLogFile); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err == nil {
			logOutput = f
		}
	}
	return hclog.NewInterceptLogger(&hclog.LoggerOptions{
		Name:              name,
		Level:             globalLogLevel(),
		Output:            logOutput,
		IndependentLevels: true,
	})
}

func globalLogLevel() hclog.Level {
	envLevel := strings.ToUpper(os.Getenv(envLog))
	if envLevel == "" || envLevel == "OFF" {
		return hclog.Off
	}
	if isValidLogLevel(envLevel) {
		return hclog.LevelFromString(envLevel)
	}
	// An unrecognized value behaves like TRACE, which mirrors the
	// behavior users expect from setting the variable to "1" or "true".
	return hclog.Trace
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLevels {
		if level == l {
			return true
		}
	}
	return false
}
