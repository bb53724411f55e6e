// Package middleware holds the gin middleware stack of the REST API: error
// rendering, security headers, compression, rate limiting, access logging,
// metrics, CORS, body limits and bearer-token authentication.
package middleware
