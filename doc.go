// Package ecommerce provides a small, concurrent-safe store of per-user locale preferences.
//
// A UserPreference holds, for each user name, the country and language that user
// has chosen. Platform handlers in the handler package share one store and delegate
// their changes to it. Storage is pluggable; see the storage package for the
// in-memory and SQLite backends.
package ecommerce
