// Package pet defines the domain values for the menagerie: the per-table
// data fragments of the Class Table Inheritance mapping, the composition
// structs that reassemble them, and the closed Mammal union used for
// polymorphic collections.
//
// Values in this package are plain data. They are produced by the gateway
// package from joined fragments and carry no reference back to storage, so
// mutating a returned value never affects stored rows.
package pet
