// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/report"
	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		anchorFile string
		chainFile  string
		leafFirst  bool
		at         string
		format     string
		save       string
		der        bool
	)

	cmd := &cobra.Command{
		Use:   "validate --anchor FILE --chain FILE",
		Short: "Validate a certification path against a trust anchor",
		Long: `Validate a certification path against a trust anchor.

The chain file holds the leaf and its intermediates as PEM blocks,
concatenated DER or PKCS#7. Intermediates are listed issuer-most first and
the leaf last, unless --leaf-first is given.

With --save the validated path is written back issuer-most first, as PEM or
with --der as concatenated DER. Nothing is written when validation fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if anchorFile == "" {
				return ErrAnchorRequired
			}
			if chainFile == "" {
				return ErrChainRequired
			}
			out, err := a.format(format)
			if err != nil {
				return err
			}

			anchor, err := readCertificate(anchorFile)
			if err != nil {
				return err
			}
			bundle, err := readCertificates(chainFile)
			if err != nil {
				return err
			}
			chain, err := x509cert.ChainFromBundle(bundle, leafFirst || a.cfg.Validation.LeafFirst)
			if err != nil {
				return err
			}

			validator, now, err := a.validator(cmd, at)
			if err != nil {
				return err
			}
			verr := validator.ValidatePath(chain, anchor)

			if err := report.Path(anchor, chain, now, verr).Render(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if verr != nil {
				return fmt.Errorf("%w: %w", ErrPathInvalid, verr)
			}
			if save != "" {
				return writeBundle(save, chain, der)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&anchorFile, "anchor", "a", "", "trust anchor certificate file")
	cmd.Flags().StringVarP(&chainFile, "chain", "f", "", "leaf and intermediate certificates file")
	cmd.Flags().BoolVar(&leafFirst, "leaf-first", false, "chain file lists the leaf first")
	cmd.Flags().StringVar(&at, "at", "", "validation time in RFC 3339 (default: now)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: text, json, table or tree")
	cmd.Flags().StringVar(&save, "save", "", "write the validated chain to this file")
	cmd.Flags().BoolVar(&der, "der", false, "write the saved chain as DER instead of PEM")
	return cmd
}
