// Package auth implements access tokens and password hashing for customers,
// partners and administrators.
package auth
