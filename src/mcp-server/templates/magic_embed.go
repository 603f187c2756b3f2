// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed instructions.md docs/*.md
var embeddedFS embed.FS

// Instructions is the name of the server instructions template.
const Instructions = "instructions.md"

// DocsDir is the directory holding the documentation served as resources.
const DocsDir = "docs"

// EmbedFS is the read-only filesystem holding the instructions template and
// the documentation. [embed.FS] and [testing/fstest.MapFS] both satisfy it.
type EmbedFS interface {
	fs.ReadFileFS
	fs.ReadDirFS
}

// MagicEmbed is the embedded filesystem holding the server instructions
// template and the documentation served as resources.
//
// Example usage for listing the documentation:
//
//	docs, err := templates.Docs(templates.MagicEmbed)
//	if err != nil {
//		return fmt.Errorf("failed to list documentation: %w", err)
//	}
var MagicEmbed EmbedFS = embeddedFS

// Doc is one markdown document under [DocsDir].
type Doc struct {
	// Name is the file name without the .md suffix, e.g. "extensions".
	Name string
	// Title is the first level-one heading, or Name when there is none.
	Title string
	// Content is the raw markdown.
	Content []byte
}

// Docs reads every markdown document under [DocsDir], ordered by name.
// Subdirectories and other files are skipped.
//
// Parameters:
//   - fsys: Filesystem holding the documentation
//
// Returns:
//   - []Doc: The documents
//   - error: If the directory or a document cannot be read
func Docs(fsys EmbedFS) ([]Doc, error) {
	entries, err := fsys.ReadDir(DocsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list documentation: %w", err)
	}

	var docs []Doc
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".md")
		if entry.IsDir() || !ok || name == "" {
			continue
		}
		content, err := fsys.ReadFile(path.Join(DocsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		docs = append(docs, Doc{Name: name, Title: title(content, name), Content: content})
	}
	return docs, nil
}

func title(content []byte, fallback string) string {
	for line := range bytes.Lines(content) {
		if heading, ok := strings.CutPrefix(strings.TrimSpace(string(line)), "# "); ok {
			return strings.TrimSpace(heading)
		}
	}
	return fallback
}
