package order_test

import (
	"testing"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/core/domain/model/pricing"
	"rentops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowAll grants every permission; denyAll grants none.
type allowAll struct{}

func (allowAll) CanPerform(string, string) bool { return true }

type denyAll struct{}

func (denyAll) CanPerform(string, string) bool { return false }

var reviewPolicy = order.EditPolicy{order.PricingReview, order.PendingApproval}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{
		ContactName:  "Lena Aziz",
		ContactEmail: "lena@example.com",
	}, kernel.NewUUID())
	require.NoError(t, err)
	return o
}

// advanceTo walks the order along the shortest path until it reaches target.
func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	actor := kernel.NewUUID()

	var path []order.Status
	switch target {
	case order.PendingApproval:
		path = []order.Status{order.Submitted, order.PricingReview, order.PendingApproval}
	case order.Declined:
		path = []order.Status{order.Submitted, order.PricingReview, order.Quoted, order.Declined}
	default:
		path = []order.Status{
			order.Submitted, order.PricingReview, order.Quoted, order.Confirmed,
			order.InPreparation, order.ReadyForDelivery, order.InTransit,
			order.Delivered, order.InUse, order.AwaitingReturn, order.Closed,
		}
	}

	for _, next := range path {
		if o.Status() == target {
			return
		}
		require.NoError(t, o.Transition(next, actor, "", allowAll{}))
	}
	require.Equal(t, target, o.Status())
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func priceOrder(t *testing.T, o *order.Order) {
	t.Helper()
	volume, err := kernel.NewVolumeFromString("20")
	require.NoError(t, err)
	base, err := pricing.NewBaseOperations(volume, money(t, "50.00"))
	require.NoError(t, err)
	transport, err := pricing.NewTransport("Dubai", pricing.RoundTrip, "3-ton truck",
		money(t, "300.00"), money(t, "300.00"))
	require.NoError(t, err)
	require.NoError(t, o.SetPricingInputs(base, transport, decimal.NewFromInt(25)))
}

func billable(t *testing.T, qty int64, rate string) *lineitem.LineItem {
	t.Helper()
	item, err := lineitem.NewLineItem(kernel.NewUUID(), "Crew", lineitem.CategoryHandling,
		lineitem.Billable, decimal.NewFromInt(qty), "hour", money(t, rate), nil)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("should create draft order with seeded history", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, order.FinancialNone, o.FinancialStatus())
		require.Len(t, o.History(), 1)
		assert.Equal(t, order.Draft, o.History()[0].Status())
		assert.Contains(t, o.Code(), "ORD-")
		assert.Nil(t, o.Pricing())
	})

	t.Run("should fail with zero-value IDs", func(t *testing.T) {
		var companyID kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), companyID, order.Details{}, kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestOrder_Transition(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("accepted transition appends history and mutates status", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.Transition(order.Submitted, actor, "client submitted", allowAll{}))

		assert.Equal(t, order.Submitted, o.Status())
		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.Submitted, history[len(history)-1].Status())
		assert.Equal(t, "client submitted", history[len(history)-1].Notes())
	})

	t.Run("history last entry always equals status after every transition", func(t *testing.T) {
		o := newDraftOrder(t)
		for _, next := range []order.Status{order.Submitted, order.PricingReview, order.Quoted, order.Confirmed} {
			require.NoError(t, o.Transition(next, actor, "", allowAll{}))

			history := o.History()
			assert.Equal(t, o.Status(), history[len(history)-1].Status())
			require.NoError(t, o.Validate())
		}
	})

	t.Run("transition outside allowed set returns InvalidTransition and leaves order unchanged", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Confirmed)
		before := len(o.History())

		err := o.Transition(order.Delivered, actor, "", allowAll{})

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Len(t, o.History(), before)
	})

	t.Run("every illegal target is rejected from every reachable status", func(t *testing.T) {
		for _, from := range allStatuses() {
			if from.IsTerminal() {
				continue
			}
			for _, target := range allStatuses() {
				if from.CanTransitionTo(target) {
					continue
				}
				o := newDraftOrder(t)
				advanceTo(t, o, from)

				err := o.Transition(target, actor, "", allowAll{})

				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", from, target)
				assert.Equal(t, from, o.Status())
			}
		}
	})

	t.Run("terminal states reject all transitions with TerminalState", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Closed)

		for _, target := range allStatuses() {
			err := o.Transition(target, actor, "", allowAll{})
			require.ErrorIs(t, err, errs.ErrTerminalState, target.String())
		}

		declined := newDraftOrder(t)
		advanceTo(t, declined, order.Quoted)
		require.NoError(t, declined.Transition(order.Declined, actor, "budget cut", allowAll{}))

		err := declined.Transition(order.Quoted, actor, "", allowAll{})
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})

	t.Run("actor without edge permission gets Unauthorized", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.Transition(order.Submitted, actor, "", denyAll{})

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.Draft, o.Status())
		assert.Len(t, o.History(), 1)
	})

	t.Run("transition does not assign windows implicitly", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Confirmed)

		assert.Nil(t, o.DeliveryWindow())
		assert.Nil(t, o.PickupWindow())
	})
}

func TestOrder_AssignWindows(t *testing.T) {
	now := time.Now().UTC()
	delivery, _ := order.NewWindow(now.Add(24*time.Hour), now.Add(26*time.Hour))
	pickup, _ := order.NewWindow(now.Add(72*time.Hour), now.Add(74*time.Hour))

	t.Run("permitted once confirmed", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Confirmed)

		require.NoError(t, o.AssignWindows(delivery, pickup))

		require.NotNil(t, o.DeliveryWindow())
		require.NotNil(t, o.PickupWindow())
		assert.Equal(t, delivery.Start(), o.DeliveryWindow().Start())
	})

	t.Run("rejected before confirmation with OrderLocked", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Quoted)

		err := o.AssignWindows(delivery, pickup)

		require.ErrorIs(t, err, errs.ErrOrderLocked)
		assert.Nil(t, o.DeliveryWindow())
	})

	t.Run("window start must precede end", func(t *testing.T) {
		_, err := order.NewWindow(now.Add(2*time.Hour), now.Add(time.Hour))

		require.Error(t, err)
	})

	t.Run("delivery end overlapping pickup start is accepted", func(t *testing.T) {
		// The relative ordering of the two pairs is not validated anywhere
		// in the observed system; this documents the current behavior
		// rather than inventing a constraint.
		o := newDraftOrder(t)
		advanceTo(t, o, order.Confirmed)

		lateDelivery, _ := order.NewWindow(now.Add(80*time.Hour), now.Add(90*time.Hour))
		earlyPickup, _ := order.NewWindow(now.Add(10*time.Hour), now.Add(12*time.Hour))

		require.NoError(t, o.AssignWindows(lateDelivery, earlyPickup))
	})
}

func TestOrder_SetJobNumber(t *testing.T) {
	t.Run("permitted in any status, including terminal", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Closed)
		job := "JOB-2218"

		o.SetJobNumber(&job)
		require.NotNil(t, o.JobNumber())
		assert.Equal(t, "JOB-2218", *o.JobNumber())

		o.SetJobNumber(nil)
		assert.Nil(t, o.JobNumber())
	})

	t.Run("does not touch the status history", func(t *testing.T) {
		o := newDraftOrder(t)
		before := len(o.History())
		job := "JOB-1"

		o.SetJobNumber(&job)

		assert.Len(t, o.History(), before)
	})
}

func TestOrder_Payments(t *testing.T) {
	payment := order.Payment{
		Method:    "bank_transfer",
		Reference: "TXN-9913",
		Date:      time.Now().UTC(),
	}

	t.Run("invoice then payment", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.MarkInvoiced("INV-1001", time.Now().UTC()))
		assert.Equal(t, order.Invoiced, o.FinancialStatus())
		assert.Equal(t, "INV-1001", o.InvoiceNumber())

		require.NoError(t, o.RecordPayment(payment))
		assert.Equal(t, order.Paid, o.FinancialStatus())
		require.NotNil(t, o.InvoicePaidAt())
	})

	t.Run("payment without invoice fails", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.RecordPayment(payment)

		require.Error(t, err)
		assert.Equal(t, order.FinancialNone, o.FinancialStatus())
	})

	t.Run("paying a paid order returns AlreadyPaid and changes nothing", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.MarkInvoiced("INV-1001", time.Now().UTC()))
		require.NoError(t, o.RecordPayment(payment))
		paidAt := *o.InvoicePaidAt()

		err := o.RecordPayment(order.Payment{Method: "cash", Reference: "X", Date: time.Now()})

		require.ErrorIs(t, err, errs.ErrAlreadyPaid)
		assert.Equal(t, order.Paid, o.FinancialStatus())
		assert.Equal(t, paidAt, *o.InvoicePaidAt())
	})

	t.Run("missing payment fields are all named", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.MarkInvoiced("INV-1001", time.Now().UTC()))

		err := o.RecordPayment(order.Payment{})

		require.ErrorIs(t, err, errs.ErrMissingFields)
		assert.Contains(t, err.Error(), "method")
		assert.Contains(t, err.Error(), "reference")
		assert.Contains(t, err.Error(), "date")
		assert.Equal(t, order.Invoiced, o.FinancialStatus())
	})

	t.Run("double invoicing returns AlreadyResolved", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.MarkInvoiced("INV-1001", time.Now().UTC()))

		err := o.MarkInvoiced("INV-1002", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrAlreadyResolved)
		assert.Equal(t, "INV-1001", o.InvoiceNumber())
	})
}

func TestOrder_PricingConsistency(t *testing.T) {
	t.Run("pricing review scenario through the aggregate", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.PricingReview)
		priceOrder(t, o)
		require.NoError(t, o.AddLineItem(billable(t, 2, "50.00"), reviewPolicy))

		breakdown := o.Pricing()
		require.NotNil(t, breakdown)
		assert.Equal(t, "1400.00", breakdown.LogisticsSubtotal().String())
		assert.Equal(t, "350.00", breakdown.Margin().Amount().String())
		assert.Equal(t, "1750.00", breakdown.FinalTotal().String())
	})

	t.Run("every ledger mutation recomputes the breakdown", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.PricingReview)
		priceOrder(t, o)

		item := billable(t, 2, "50.00")
		require.NoError(t, o.AddLineItem(item, reviewPolicy))
		assert.Equal(t, "1750.00", o.Pricing().FinalTotal().String())

		require.NoError(t, o.SetLineItemBillingMode(item.ID(), lineitem.Complimentary, reviewPolicy))
		assert.Equal(t, "1625.00", o.Pricing().FinalTotal().String())

		require.NoError(t, o.SetLineItemBillingMode(item.ID(), lineitem.Billable, reviewPolicy))
		require.NoError(t, o.RemoveLineItem(item.ID(), reviewPolicy))
		assert.Equal(t, "1625.00", o.Pricing().FinalTotal().String())
		assert.Empty(t, o.LineItems())
	})

	t.Run("ledger edits outside the policy window return OrderLocked", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Confirmed)
		priceOrder(t, o)

		err := o.AddLineItem(billable(t, 1, "10.00"), reviewPolicy)

		require.ErrorIs(t, err, errs.ErrOrderLocked)
		assert.Empty(t, o.LineItems())
	})

	t.Run("reskin-linked line item cannot be removed", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.PricingReview)
		priceOrder(t, o)

		item, err := lineitem.NewReskinLineItem(kernel.NewUUID(), "Reskin: Acme booth",
			money(t, "250.00"), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.AttachReskinLineItem(item))

		err = o.RemoveLineItem(item.ID(), reviewPolicy)

		require.ErrorIs(t, err, errs.ErrLinkedRecordExists)
		assert.Len(t, o.LineItems(), 1)
	})

	t.Run("reskin line item attaches past the editable window", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.InUse)
		priceOrder(t, o)
		before := o.Pricing().FinalTotal()

		item, err := lineitem.NewReskinLineItem(kernel.NewUUID(), "Reskin: Acme booth",
			money(t, "100.00"), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.AttachReskinLineItem(item))

		assert.False(t, o.Pricing().FinalTotal().IsEqual(before))
	})

	t.Run("negative margin is rejected", func(t *testing.T) {
		o := newDraftOrder(t)
		volume, _ := kernel.NewVolumeFromString("20")
		base, _ := pricing.NewBaseOperations(volume, money(t, "50.00"))
		transport, _ := pricing.NewTransport("Dubai", pricing.OneWay, "van", money(t, "100.00"), money(t, "100.00"))

		err := o.SetPricingInputs(base, transport, decimal.NewFromInt(-5))

		require.Error(t, err)
		assert.Nil(t, o.Pricing())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips through restore", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.PricingReview)
		priceOrder(t, o)
		require.NoError(t, o.AddLineItem(billable(t, 2, "50.00"), reviewPolicy))

		restored, err := order.RestoreOrder(
			o.ID(), o.Code(), o.CompanyID(), o.Details(), o.Status(), o.History(),
			o.FinancialStatus(), o.JobNumber(), o.DeliveryWindow(), o.PickupWindow(),
			o.InvoiceNumber(), o.InvoicedAt(), o.InvoicePaidAt(), o.Payment(),
			o.BaseOperations(), o.Transport(), o.MarginPercent(), o.LineItems(),
			o.Version(), o.CreatedAt(), o.UpdatedAt(),
		)

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, o.Status(), restored.Status())
		require.NotNil(t, restored.Pricing())
		assert.Equal(t, "1750.00", restored.Pricing().FinalTotal().String())
	})

	t.Run("rejects empty history", func(t *testing.T) {
		o := newDraftOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.Code(), o.CompanyID(), o.Details(), o.Status(), nil,
			o.FinancialStatus(), nil, nil, nil, "", nil, nil, nil,
			nil, nil, decimal.Zero, nil, 0, o.CreatedAt(), o.UpdatedAt(),
		)

		require.Error(t, err)
	})

	t.Run("rejects history that does not end in the status", func(t *testing.T) {
		o := newDraftOrder(t)
		history := []order.HistoryEntry{
			order.NewHistoryEntry(order.Submitted, time.Now(), kernel.NewUUID(), ""),
		}

		_, err := order.RestoreOrder(
			o.ID(), o.Code(), o.CompanyID(), o.Details(), order.Draft, history,
			o.FinancialStatus(), nil, nil, nil, "", nil, nil, nil,
			nil, nil, decimal.Zero, nil, 0, o.CreatedAt(), o.UpdatedAt(),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}
