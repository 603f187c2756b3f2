// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/helper/posix"
)

const fallback = "x509-path-validator"

func TestExecutableName(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"relative path", []string{"./validator"}, "validator"},
		{"bare name", []string{"validator"}, "validator"},
		{"unix absolute path", []string{"/usr/local/bin/validator", "validate"}, "validator"},
		{"windows path", []string{`C:\Program Files\tools\validator.exe`}, "validator"},
		{"exe suffix", []string{"validator.exe"}, "validator"},
		{"other extension kept", []string{"validator.bin"}, "validator.bin"},
		{"empty args", []string{}, fallback},
		{"empty program name", []string{""}, fallback},
		{"only exe suffix", []string{".exe"}, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := os.Args
			t.Cleanup(func() { os.Args = orig })

			os.Args = tt.args
			assert.Equal(t, tt.want, posix.ExecutableName(fallback))
		})
	}
}
