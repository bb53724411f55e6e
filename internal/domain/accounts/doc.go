// Package accounts defines customer accounts, authenticated principals and the
// email verification codes used to confirm account ownership.
package accounts
