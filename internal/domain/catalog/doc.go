// Package catalog defines what the platform sells: subscription plans, extra
// services added at the wash bay, and the postcode districts it covers.
package catalog
