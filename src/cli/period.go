// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/report"
	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

func (a *app) periodCmd() *cobra.Command {
	var (
		at     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "period FILE...",
		Short: "Check that certificates are inside their validity period",
		Args:  requireFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.format(format)
			if err != nil {
				return err
			}

			var certs []*x509cert.Certificate
			for _, file := range args {
				bundle, err := readCertificates(file)
				if err != nil {
					return err
				}
				certs = append(certs, bundle...)
			}

			validator, now, err := a.validator(cmd, at)
			if err != nil {
				return err
			}
			errs := make([]error, len(certs))
			failed := 0
			for i, cert := range certs {
				if errs[i] = validator.ValidatePeriod(cert); errs[i] != nil {
					failed++
				}
			}

			if err := report.Periods(certs, errs, now).Render(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if failed > 0 {
				return wrapf(ErrPeriodInvalid, "%d of %d certificates", failed, len(certs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "validation time in RFC 3339 (default: now)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: text, json, table or tree")
	return cmd
}

func requireFiles(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrInputFileRequired
	}
	return nil
}
