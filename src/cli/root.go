// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-path-validator/src/config"
	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-path-validator/src/logger"
	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

var (
	// ErrInputFileRequired is returned when a command is run without an input file.
	ErrInputFileRequired = errors.New("input certificate file is required")
	// ErrAnchorRequired is returned when validate is run without --anchor.
	ErrAnchorRequired = errors.New("trust anchor file is required (--anchor)")
	// ErrChainRequired is returned when validate is run without --chain.
	ErrChainRequired = errors.New("chain file is required (--chain)")
	// ErrPathInvalid is returned when path validation fails.
	ErrPathInvalid = errors.New("certification path is invalid")
	// ErrPeriodInvalid is returned when a certificate is outside its validity period.
	ErrPeriodInvalid = errors.New("certificate validity period check failed")
)

// OperationPerformed reports whether the last Execute ran a command to
// completion without error.
var OperationPerformed bool

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// log receives the text trace in verbose mode.
	log        logger.Logger
	configPath string
	verbose    bool
	cfg        *config.Config
}

// Execute runs the root command with the process arguments.
//
// Parameters:
//   - ctx: Context for cancellation
//   - version: Version string reported by --version
//   - log: Logger for user-facing messages
//
// Returns:
//   - error: The first error from loading configuration, reading input, or validation
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	if err := NewCommand(version, log).ExecuteContext(ctx); err != nil {
		return err
	}
	OperationPerformed = true
	return nil
}

// NewCommand builds the root command and its subcommands.
// A nil log is replaced by a [logger.CLILogger].
func NewCommand(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	a := &app{log: log}

	rootCmd := &cobra.Command{
		Use:     posix.ExecutableName("x509-path-validator"),
		Short:   "X.509 certification path validator",
		Long:    "Validate X.509 certification paths, check validity periods and inspect certificate extensions.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"configuration file (.json, .yaml, .yml); defaults to $"+config.EnvConfigFile)
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "trace every validation step to stderr")

	rootCmd.AddCommand(a.validateCmd(), a.periodCmd(), a.inspectCmd())
	return rootCmd
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Verbose = true
	}
	a.cfg = cfg
	return nil
}

// validator builds a validator for one command. at overrides the configured
// validation time when it is not empty.
func (a *app) validator(cmd *cobra.Command, at string) (*x509cert.Validator, time.Time, error) {
	if at != "" {
		a.cfg.Validation.At = at
	}
	clock, err := a.cfg.Clock()
	if err != nil {
		return nil, time.Time{}, err
	}
	now := clock()

	return x509cert.NewValidator(&x509cert.ValidatorConfig{
		CurrentTime: func() time.Time { return now },
		Logger:      a.traceLogger(cmd),
	}), now, nil
}

func (a *app) traceLogger(cmd *cobra.Command) logger.Logger {
	if !a.cfg.Log.Verbose {
		return logger.Discard()
	}
	if a.cfg.Log.Format == config.LogFormatJSON {
		return logger.NewJSONLogger(cmd.ErrOrStderr(), false)
	}
	a.log.SetOutput(cmd.ErrOrStderr())
	return a.log
}

// format returns the output format: the flag value when set, otherwise the
// configured one.
func (a *app) format(flag string) (string, error) {
	if flag == "" {
		return a.cfg.Output.Format, nil
	}
	candidate := *a.cfg
	candidate.Output.Format = flag
	if err := candidate.Validate(); err != nil {
		return "", err
	}
	return flag, nil
}

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
