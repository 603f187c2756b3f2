// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-path-validator/src/mcp-server/templates"
	x509sig "github.com/H0llyW00dzZ/x509-path-validator/src/x509/signature"
)

// Resource URIs.
const (
	resourceVersion = "info://version"
	resourceDocs    = "docs://"
)

// createResources creates the version resource and one docs:// resource per
// embedded document.
//
// Parameters:
//   - fs: Filesystem holding the documentation under [templates.DocsDir]
//   - version: Server version reported by info://version
//
// Returns:
//   - []server.ServerResource: The resources, version first
//   - error: If the documentation cannot be read
func createResources(fs templates.EmbedFS, version string) ([]server.ServerResource, error) {
	docs, err := templates.Docs(fs)
	if err != nil {
		return nil, err
	}

	uris := make([]string, 0, len(docs))
	for _, doc := range docs {
		uris = append(uris, resourceDocs+doc.Name)
	}

	resources := []server.ServerResource{
		{
			Resource: mcp.NewResource(resourceVersion, "Server Version",
				mcp.WithResourceDescription("Server name, version, supported signature algorithms and documentation"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleVersionResource(version, uris)
			},
		},
	}
	for i, doc := range docs {
		resources = append(resources, server.ServerResource{
			Resource: mcp.NewResource(uris[i], doc.Title,
				mcp.WithResourceDescription(doc.Title+" documentation"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handleDocResource(uris[i], doc), nil
			},
		})
	}
	return resources, nil
}

// handleVersionResource returns server metadata as JSON.
func handleVersionResource(version string, docs []string) ([]mcp.ResourceContents, error) {
	schemes := x509sig.DefaultRegistry().Schemes()
	algorithms := make([]string, 0, len(schemes))
	for _, s := range schemes {
		algorithms = append(algorithms, s.Name)
	}

	data, err := json.MarshalIndent(map[string]any{
		"name":                serverName,
		"version":             version,
		"goVersion":           runtime.Version(),
		"signatureAlgorithms": algorithms,
		"tools":               []string{toolValidatePath, toolCheckPeriod, toolInspect},
		"documentation":       docs,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      resourceVersion,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleDocResource returns one embedded document.
func handleDocResource(uri string, doc templates.Doc) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     string(doc.Content),
		},
	}
}
