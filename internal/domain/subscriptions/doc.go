// Package subscriptions defines customer subscriptions, the short-lived QR codes
// customers present at a wash bay, and the wash verifications partners record
// when they scan them.
package subscriptions
