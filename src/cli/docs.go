// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 path validator.
// It implements a Cobra-based CLI with three commands: validate checks a
// certification path against a trust anchor, period checks validity windows,
// and inspect prints certificates with their typed extensions. Output is
// rendered as text, JSON, a markdown table or an ASCII tree. Settings come
// from the config package and can be overridden per command with flags.
package cli
