package commands_test

import (
	"testing"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testDetails() order.Details {
	return order.Details{
		ContactName:  "Rita Kovac",
		ContactEmail: "rita@example.com",
		VenueName:    "Pier 12 Pavilion",
		EventStart:   time.Now().Add(48 * time.Hour),
		EventEnd:     time.Now().Add(72 * time.Hour),
	}
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testDetails(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, target order.Status) *order.Order {
	t.Helper()
	o := newDraftOrder(t)
	perms := stubPermissions{allow: true}
	actor := kernel.NewUUID()

	path := []order.Status{
		order.Submitted, order.PricingReview, order.Quoted, order.Confirmed,
		order.InPreparation, order.ReadyForDelivery, order.InTransit,
		order.Delivered, order.InUse, order.AwaitingReturn, order.Closed,
	}
	for _, next := range path {
		if o.Status() == target {
			return o
		}
		require.NoError(t, o.Transition(next, actor, "", perms))
	}
	require.Equal(t, target, o.Status())
	return o
}

func testMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}
