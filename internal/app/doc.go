// Package app implements the application services behind the REST API. Services
// enforce business rules and ownership; persistence is reached through the
// repository interfaces of each domain package.
package app
