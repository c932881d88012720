// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with convenience functions and
// environment-aware configuration, giving every attach-core package one
// consistent logging surface.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("decoding listing row", "pid", pid)
//	logutil.Info("enumeration complete", "records", n)
//	logutil.Warn("config file ignored", "path", path)
//	logutil.Error("listing failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set PSATTACH_DEBUG=true in the environment
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON;
// otherwise a human-readable text format is used. Logs go to stderr so they
// never mix with command output on stdout.
package logutil
