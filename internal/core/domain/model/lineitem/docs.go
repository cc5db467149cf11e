// Package lineitem contains the line item ledger of the rental order domain:
// the LineItem entity attached to orders for ad-hoc service, transport, and
// rebrand charges, and the Request entity that tracks client-submitted line
// item requests through their approval lifecycle.
//
// A line item's billing mode decides whether it counts toward the client
// billed total (Billable), is tracked but not charged (NonBillable), or is
// an explicit goodwill waiver (Complimentary). Only Billable items carry a
// non-zero line total.
package lineitem
