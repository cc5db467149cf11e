// Package pricing contains the price composition model of the rental order
// domain. A Breakdown is composed from base warehouse operations, transport,
// the order's billable line items, and a single margin applied to the
// logistics subtotal.
//
// Compose is a pure function: identical inputs always yield an identical
// Breakdown, and a breakdown never stores a total independently of the
// inputs it was computed from.
package pricing
