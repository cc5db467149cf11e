// Package order contains the Order aggregate root and its lifecycle state
// machine. The aggregate composes the pricing breakdown and the line item
// ledger and keeps them consistent as the order moves through states: every
// mutation of a pricing input recomputes the breakdown before the operation
// returns, and every accepted transition appends to the append-only status
// history.
//
// The state machine is a data-driven directed graph; each edge carries the
// permission key an actor must hold to traverse it. Permission lookup,
// rate lookups, notification dispatch, and persistence are external
// collaborators injected by the application layer.
package order
