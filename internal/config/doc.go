// Package config loads, merges and validates the configuration of the
// blocklist server and its CLI client.
//
// Sources, in order of precedence (the first non-zero value of a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c)
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
