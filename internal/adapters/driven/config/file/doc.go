// Package file provides a TOML-backed ConfigStore plus helpers for
// resolving the Serper API key from the environment, a local .env file,
// or the config file, in that order. A watcher can hot-reload the key
// under a long-running MCP server.
package file
