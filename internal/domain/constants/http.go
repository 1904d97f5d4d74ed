// Package constants holds values shared across layers.
package constants

// HeaderRequestID carries the request trace id in both directions.
const HeaderRequestID = "X-Request-Id"
