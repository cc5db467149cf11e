package pricing

import (
	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"

	"github.com/shopspring/decimal"
)

// Compose computes a full price breakdown from its inputs.
//
// The logistics subtotal sums the base operations total, the transport
// final rate, and the line totals of Billable items only; NonBillable and
// Complimentary items are excluded from every monetary total. The margin is
// applied exactly once to the subtotal, never compounded per line item.
//
// Compose is pure: it has no side effects, reads no hidden state, and
// identical inputs always produce an identical Breakdown.
func Compose(base BaseOperations, transport Transport, items []*lineitem.LineItem, marginPercent decimal.Decimal) Breakdown {
	subtotal := base.Total().Add(transport.FinalRate()).Add(BillableTotal(items))
	marginAmount := subtotal.Percent(marginPercent)

	return Breakdown{
		baseOperations:    base,
		transport:         transport,
		logisticsSubtotal: subtotal,
		margin:            Margin{percent: marginPercent, amount: marginAmount},
		finalTotal:        subtotal.Add(marginAmount),
	}
}

// BillableTotal sums the line totals of Billable items.
func BillableTotal(items []*lineitem.LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		if item.BillingMode() == lineitem.Billable {
			total = total.Add(item.LineTotal())
		}
	}
	return total
}
