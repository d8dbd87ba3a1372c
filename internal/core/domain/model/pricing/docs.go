// Package pricing holds the read-only rating configuration: the handling-fee
// table, the SKU lead-time table, and the Settings snapshot that bundles
// everything a single quote needs. Settings are loaded from storage by an
// adapter and cached as an immutable snapshot per refresh.
package pricing
