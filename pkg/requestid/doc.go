// Package requestid tags each HTTP request with an identifier.
//
// Middleware accepts a client-supplied X-Request-ID when it contains only
// letters, digits, '-' and '_' (at most 128 bytes) and otherwise generates a
// UUIDv4. The ID is echoed in the response and stored in the request context,
// where FromContext and LoggerExtractor pick it up.
package requestid
