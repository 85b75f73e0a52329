// Package api exposes the task service over HTTP. Handlers decode requests,
// call the service and translate its errors into status codes; routing is
// done with chi in cmd/server.
package api
