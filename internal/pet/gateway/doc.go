// Package gateway is the single access path to the fragment stores. It
// translates domain requests into coordinated store operations: typed
// constructors that attach every fragment of a row before returning, and
// joined queries that reassemble domain values by row id.
//
// Two error outcomes exist. ErrNotFound is the normal "no such row"
// result of a direct lookup. ErrBrokenRow means a joined query found a
// leaf fragment whose base or mid-level partner is missing; since the
// gateway is the only writer, that indicates an internal defect rather
// than a recoverable condition.
//
// Rows are immutable once created. Update and delete are deliberate
// extension points: adding them means a new gateway operation plus a
// store-level replace or detach primitive.
package gateway
