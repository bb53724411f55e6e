// Package admin defines the back-office views over the whole platform.
package admin
