// Package passwords generates random passwords and scores their strength.
//
// Both helpers are stateless and independent of the vault storage; the
// presentation layer calls them while the user fills in an account form.
package passwords
