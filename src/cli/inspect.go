// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/report"
	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

func (a *app) inspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print certificate details and typed extensions",
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
			return report.Inspect(certs, time.Now()).Render(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: text, json, table or tree")
	return cmd
}
