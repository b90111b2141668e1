// Package api handles incoming HTTP requests: routing, request decoding
// and validation, response formatting, and the mapping of service errors to
// HTTP status codes. It adapts external clients to the internal services
// without holding any business logic of its own.
package api
