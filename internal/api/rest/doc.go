// Package rest assembles the HTTP server: the ordered middleware stack, health
// and metrics endpoints, static uploads and the versioned API routes.
package rest
