// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableName returns the base name of os.Args[0] without a ".exe"
// suffix, or fallback when the program name is unavailable.
//
// Windows-style paths are split on both separators so they resolve the same
// way on every platform.
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}

	name := filepath.Base(os.Args[0])
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
		if len(parts) == 0 {
			return fallback
		}
		name = parts[len(parts)-1]
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." {
		return fallback
	}
	return name
}
