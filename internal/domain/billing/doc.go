// Package billing defines payments, stored payment methods and the payment
// provider events received through webhooks.
package billing
