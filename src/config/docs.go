// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the settings shared by the x509-path-validator CLI
// and MCP server.
//
// Settings come from a JSON or YAML file, chosen by extension, whose path is
// passed explicitly or read from the X509_PATH_VALIDATOR_CONFIG environment
// variable. Missing values take defaults.
//
// Example YAML:
//
//	validation:
//	  at: "2026-01-01T00:00:00Z"
//	  leafFirst: false
//	output:
//	  format: table
//	log:
//	  verbose: true
//	  format: json
package config
