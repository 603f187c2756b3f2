// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// It embeds:
//   - instructions.md: a text/template rendered with the registered tools and
//     sent to clients as server instructions
//   - docs/*.md: documentation served as one docs://<name> resource per file,
//     listed by [Docs]
//
// Access goes through the [EmbedFS] interface, with [MagicEmbed] as the
// default implementation.
package templates
