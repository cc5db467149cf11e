// Package kernel contains the shared value objects of the rental order
// domain: UUID identifiers, fixed-precision Money amounts, and Volume
// measurements. All value objects are immutable and must be created through
// their constructor functions; zero values fail validation.
package kernel
