// Package participant holds the buyer and farmer identities that orders and
// notifications refer to.
package participant
