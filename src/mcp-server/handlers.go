// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/x509-path-validator/src/config"
	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/report"
	"github.com/H0llyW00dzZ/x509-path-validator/src/logger"
	"github.com/H0llyW00dzZ/x509-path-validator/src/mcp-server/templates"
	x509cert "github.com/H0llyW00dzZ/x509-path-validator/src/x509/certificate"
)

// traceOutput receives validation traces when log.verbose is set. Stdout
// carries the protocol, so it defaults to stderr.
var traceOutput io.Writer = os.Stderr

// errInvalidInput is returned when a certificate argument is neither a
// readable file nor base64 data.
var errInvalidInput = errors.New("not a valid file path or base64 data")

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the instructions template with the registered tools.
//
// Parameters:
//   - fs: Filesystem holding instructions.md
//   - tools: Tool definitions without config requirements
//   - toolsWithConfig: Tool definitions that require configuration access
//
// Returns:
//   - string: The rendered instructions
//   - error: If the template cannot be read, parsed or executed
func loadInstructions(fs templates.EmbedFS, tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) (string, error) {
	templateBytes, err := fs.ReadFile(templates.Instructions)
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{ToolRoles: make(map[string]string)}
	add := func(tool mcp.Tool, role string) {
		data.Tools = append(data.Tools, toolInfo{Name: tool.Name, Description: tool.Description})
		if role != "" {
			data.ToolRoles[role] = tool.Name
		}
	}
	for _, tool := range tools {
		add(tool.Tool, tool.Role)
	}
	for _, tool := range toolsWithConfig {
		add(tool.Tool, tool.Role)
	}
	slices.SortFunc(data.Tools, func(a, b toolInfo) int { return strings.Compare(a.Name, b.Name) })

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()
	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return buf.String(), nil
}

// readCertificateInput reads a file path, falling back to base64-encoded data.
func readCertificateInput(input string) ([]byte, error) {
	if f, err := os.Open(input); err == nil {
		defer f.Close()
		return gc.ReadAll(f)
	}
	if decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input)); err == nil {
		return decoded, nil
	}
	return nil, errInvalidInput
}

func decodeBundle(input string) ([]*x509cert.Certificate, error) {
	data, err := readCertificateInput(input)
	if err != nil {
		return nil, err
	}
	return x509cert.ParseAll(data)
}

// toolConfig returns a copy of cfg with the per-call overrides applied.
func toolConfig(request mcp.CallToolRequest, cfg *config.Config) (*config.Config, error) {
	c := *cfg
	if at := request.GetString("at", ""); at != "" {
		c.Validation.At = at
	}
	if format := request.GetString("format", ""); format != "" {
		c.Output.Format = format
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// traceLogger returns the validator logger configured by c.Log.
func traceLogger(c *config.Config, w io.Writer) logger.Logger {
	if !c.Log.Verbose {
		return logger.Discard()
	}
	if c.Log.Format == config.LogFormatJSON {
		return logger.NewJSONLogger(w, false)
	}
	l := logger.NewCLILogger()
	l.SetOutput(w)
	return l
}

func render(r *report.Report, format string) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, format); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// handleValidateCertPath validates a certification path against a trust anchor.
//
// The result is the rendered report. A path that fails validation is returned
// as a tool error carrying the same report.
func handleValidateCertPath(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	anchorInput, err := request.RequireString("anchor")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("anchor parameter required: %v", err)), nil
	}
	chainInput, err := request.RequireString("chain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chain parameter required: %v", err)), nil
	}
	c, err := toolConfig(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	anchorData, err := readCertificateInput(anchorInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read anchor: %v", err)), nil
	}
	anchor, err := x509cert.Parse(anchorData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode anchor: %v", err)), nil
	}
	bundle, err := decodeBundle(chainInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode chain: %v", err)), nil
	}

	chain, err := x509cert.ChainFromBundle(bundle, request.GetBool("leaf_first", c.Validation.LeafFirst))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build chain: %v", err)), nil
	}

	clock, err := c.Clock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	now := clock()
	validator := x509cert.NewValidator(&x509cert.ValidatorConfig{
		CurrentTime: func() time.Time { return now },
		Logger:      traceLogger(c, traceOutput),
	})
	verr := validator.ValidatePath(chain, anchor)

	out, err := render(report.Path(anchor, chain, now, verr), c.Output.Format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if verr != nil {
		return mcp.NewToolResultError(out), nil
	}
	return mcp.NewToolResultText(out), nil
}

// handleCheckCertPeriod checks the validity period of every certificate in
// the input.
func handleCheckCertPeriod(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}
	c, err := toolConfig(request, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	certs, err := decodeBundle(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
	}

	clock, err := c.Clock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	now := clock()
	validator := x509cert.NewValidator(&x509cert.ValidatorConfig{
		CurrentTime: func() time.Time { return now },
		Logger:      traceLogger(c, traceOutput),
	})

	errs := make([]error, len(certs))
	for i, cert := range certs {
		errs[i] = validator.ValidatePeriod(cert)
	}

	r := report.Periods(certs, errs, now)
	out, err := render(r, c.Output.Format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !r.Valid {
		return mcp.NewToolResultError(out), nil
	}
	return mcp.NewToolResultText(out), nil
}

// handleInspectCertificate describes every certificate in the input.
func handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}
	certs, err := decodeBundle(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
	}

	out, err := render(report.Inspect(certs, time.Now()), request.GetString("format", config.FormatText))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}
