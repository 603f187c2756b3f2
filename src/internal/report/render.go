// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/x509-path-validator/src/config"
	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/helper/gc"
)

// ErrUnknownFormat is returned by [Report.Render] for an unsupported format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Render writes the report to w in one of the formats defined by the config
// package: text, json, table or tree.
func (r *Report) Render(w io.Writer, format string) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	switch format {
	case config.FormatText, "":
		r.renderText(buf)
	case config.FormatJSON:
		data, err := r.JSON()
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case config.FormatTable:
		if err := r.renderTable(buf); err != nil {
			return err
		}
	case config.FormatTree:
		r.renderTree(buf)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	_, err := buf.WriteTo(w)
	return err
}

// String renders the report as text.
func (r *Report) String() string {
	var sb strings.Builder
	r.renderText(&sb)
	return sb.String()
}

// JSON returns the indented JSON form of the report.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func (r *Report) renderText(w io.Writer) {
	for i, e := range r.Certificates {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Certificate %d (%s)\n", e.Index, e.Role)
		fmt.Fprintf(w, "  Subject:             %s\n", e.Subject)
		fmt.Fprintf(w, "  Issuer:              %s\n", e.Issuer)
		fmt.Fprintf(w, "  Serial:              %s\n", e.SerialNumber)
		fmt.Fprintf(w, "  Not Before:          %s\n", e.NotBefore.Format(time.RFC3339))
		fmt.Fprintf(w, "  Not After:           %s\n", e.NotAfter.Format(time.RFC3339))
		fmt.Fprintf(w, "  Public Key:          %s\n", e.PublicKeyAlgorithm)
		fmt.Fprintf(w, "  Signature Algorithm: %s\n", e.SignatureAlgorithm)
		fmt.Fprintf(w, "  SHA-256 Fingerprint: %s\n", e.Fingerprint)
		if e.Status != "" {
			fmt.Fprintf(w, "  Status:              %s\n", e.Status)
		}
		if e.Error != "" {
			fmt.Fprintf(w, "  Error:               %s\n", e.Error)
		}
		if len(e.Extensions) > 0 {
			fmt.Fprintln(w, "  Extensions:")
			for _, ext := range e.Extensions {
				fmt.Fprintf(w, "    %s: %s\n", ext.Name, ext.Value)
			}
		}
	}

	if len(r.Certificates) > 0 {
		fmt.Fprintln(w)
	}
	if r.Valid {
		fmt.Fprintln(w, "Result: valid")
	} else {
		fmt.Fprintf(w, "Result: invalid: %s\n", r.Error)
	}
}

// renderTable writes the certificates as a markdown table.
func (r *Report) renderTable(w io.Writer) error {
	if len(r.Certificates) == 0 {
		_, err := io.WriteString(w, "No certificates to display\n")
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key", "Status"})

	rows := make([][]string, 0, len(r.Certificates))
	for _, e := range r.Certificates {
		status := e.Status
		if status == "" {
			status = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Index),
			e.Role,
			e.Subject,
			e.Issuer,
			e.NotAfter.Format("2006-01-02"),
			e.PublicKeyAlgorithm,
			status,
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// renderTree writes the certificates as an ASCII tree, each certificate
// nested under the one before it.
func (r *Report) renderTree(w io.Writer) {
	if len(r.Certificates) == 0 {
		fmt.Fprintln(w, "No certificates in report")
		return
	}

	for i, e := range r.Certificates {
		icon := "[ ]"
		switch e.Status {
		case StatusValid:
			icon = "[✓]"
		case StatusFailed:
			icon = "[✗]"
		}

		prefix := ""
		if i > 0 {
			prefix = strings.Repeat("    ", i-1) + "└── "
		}
		fmt.Fprintf(w, "%s%s %s (%s)\n", prefix, icon, e.Subject, e.Role)
	}
}
