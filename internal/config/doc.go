// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to settings for the HTTP server, the Gemini client, the
// session registry, and the worker pool. Secrets such as the Gemini API key
// are only ever supplied externally, never compiled in.
package config
