// Package partners defines car-wash operators, the sites they run, and the
// payout account each partner links for settlements.
package partners
