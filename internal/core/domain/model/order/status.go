package order

import (
	"fmt"

	"rentops/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Draft → Submitted → PricingReview ──┬──> Quoted ──┬──> Confirmed
//	                                    │      ▲      └──> Declined (terminal)
//	                                    └──> PendingApproval
//	Confirmed → InPreparation → ReadyForDelivery → InTransit
//	          → Delivered → InUse → AwaitingReturn → Closed (terminal)
//
// The allowed-next sets are held in a directed graph rather than hardcoded
// per-transition methods, so the machine is testable independent of any
// presentation layer and each edge can carry its permission key as graph
// metadata.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Draft is the initial status while the order is being assembled.
	Draft

	// Submitted means the client handed the order over for review.
	Submitted

	// PricingReview means logistics staff are composing the price.
	PricingReview

	// Quoted means the client has received a priced quote.
	Quoted

	// PendingApproval means the quote needs managerial sign-off before it
	// reaches the client.
	PendingApproval

	// Confirmed means the client accepted the quote.
	Confirmed

	// Declined means the client rejected the quote. Terminal.
	Declined

	// InPreparation means warehouse staff are preparing the assets.
	InPreparation

	// ReadyForDelivery means the prepared assets await dispatch.
	ReadyForDelivery

	// InTransit means the assets are on the road to the venue.
	InTransit

	// Delivered means the assets arrived at the venue.
	Delivered

	// InUse means the rental period is running.
	InUse

	// AwaitingReturn means the rental period ended and collection is due.
	AwaitingReturn

	// Closed means the assets are back and the order is settled. Terminal.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		Draft:            "Draft",
		Submitted:        "Submitted",
		PricingReview:    "PricingReview",
		Quoted:           "Quoted",
		PendingApproval:  "PendingApproval",
		Confirmed:        "Confirmed",
		Declined:         "Declined",
		InPreparation:    "InPreparation",
		ReadyForDelivery: "ReadyForDelivery",
		InTransit:        "InTransit",
		Delivered:        "Delivered",
		InUse:            "InUse",
		AwaitingReturn:   "AwaitingReturn",
		Closed:           "Closed",
	}
}

// transitionGraph is the directed graph of allowed transitions. A status
// missing from the map, or mapped to an empty set, accepts no outgoing
// transitions.
func transitionGraph() map[Status][]Status {
	return map[Status][]Status{
		Draft:            {Submitted},
		Submitted:        {PricingReview},
		PricingReview:    {Quoted, PendingApproval},
		PendingApproval:  {Quoted},
		Quoted:           {Confirmed, Declined},
		Confirmed:        {InPreparation},
		InPreparation:    {ReadyForDelivery},
		ReadyForDelivery: {InTransit},
		InTransit:        {Delivered},
		Delivered:        {InUse},
		InUse:            {AwaitingReturn},
		AwaitingReturn:   {Closed},
	}
}

type edge struct {
	from Status
	to   Status
}

// edgePermissions maps every edge of the transition graph to the permission
// key an actor must hold to traverse it. Permission lookup itself is an
// external collaborator.
func edgePermissions() map[edge]string {
	return map[edge]string{
		{Draft, Submitted}:                  "order.submit",
		{Submitted, PricingReview}:          "order.review_pricing",
		{PricingReview, Quoted}:             "order.quote",
		{PricingReview, PendingApproval}:    "order.request_approval",
		{PendingApproval, Quoted}:           "order.quote",
		{Quoted, Confirmed}:                 "order.confirm",
		{Quoted, Declined}:                  "order.decline",
		{Confirmed, InPreparation}:          "order.start_preparation",
		{InPreparation, ReadyForDelivery}:   "order.mark_ready",
		{ReadyForDelivery, InTransit}:       "order.dispatch",
		{InTransit, Delivered}:              "order.mark_delivered",
		{Delivered, InUse}:                  "order.mark_in_use",
		{InUse, AwaitingReturn}:             "order.start_return",
		{AwaitingReturn, Closed}:            "order.close",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string representation, as used
// by persistence and transport adapters.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// NextStatuses returns the allowed-next set for the status. Terminal and
// unknown statuses return an empty set.
func (s Status) NextStatuses() []Status {
	next := transitionGraph()[s]
	return append([]Status(nil), next...)
}

// CanTransitionTo reports whether target is in the status's allowed-next set.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitionGraph()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status accepts no further transitions.
// Declined and Closed are the terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Declined || s == Closed
}

// HasReachedConfirmed reports whether the status is Confirmed or any status
// that can only be reached after Confirmed. Delivery and pickup window
// assignment is permitted from this point on.
func (s Status) HasReachedConfirmed() bool {
	switch s {
	case Confirmed, InPreparation, ReadyForDelivery, InTransit, Delivered, InUse, AwaitingReturn, Closed:
		return true
	default:
		return false
	}
}

// PermissionKey returns the permission an actor must hold to traverse the
// edge from one status to another, and whether that edge exists.
func PermissionKey(from, to Status) (string, bool) {
	key, ok := edgePermissions()[edge{from: from, to: to}]
	return key, ok
}

// EventName returns the logical notification event emitted when an order
// enters the given status. Delivery of the event is an external concern.
func EventName(to Status) string {
	switch to {
	case Quoted:
		return "order.quoted"
	case Confirmed:
		return "order.confirmed"
	case Declined:
		return "order.declined"
	case Closed:
		return "order.closed"
	default:
		return "order.status_changed"
	}
}
