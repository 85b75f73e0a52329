// Package shared holds the HTTP plumbing used by the handlers and the
// middleware: JSON request decoding, JSON and error responses, and the
// request trace ID.
package shared
