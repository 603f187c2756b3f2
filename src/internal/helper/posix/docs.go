// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers for process-level details that differ
// between operating systems.
//
// [ExecutableName] returns the name the program was invoked as, so usage
// and example strings match the installed binary:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.ExecutableName("x509-path-validator"),
//	}
//
// Behavior across platforms:
//
//   - Linux/macOS: "/usr/local/bin/x509-path-validator" → "x509-path-validator"
//   - Windows: "C:\bin\x509-path-validator.exe" → "x509-path-validator"
//   - Empty os.Args: the fallback name
package posix
