// Package kernel contains the shared value objects of the rating domain:
// identifiers, physical weight, and monetary amounts. These types are small,
// immutable, and safe for concurrent use; all of them normalize their inputs
// at construction so the rest of the domain can operate on a single canonical
// representation (pounds for weight, integer cents for money).
package kernel
