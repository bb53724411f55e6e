// Package support defines customer support tickets.
package support
