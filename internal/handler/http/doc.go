// Package http implements the REST API of the blocklist service.
//
// It wires the chi router, decodes request bodies, maps service errors to
// status codes and JSON error bodies, and carries the cross-cutting
// middleware: request tracing, access logging, gzip, bearer-token
// authentication and the admin role gate.
package http
