// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"rentops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LineItemRequestRepoFactory provides access to the line item request
	// repository within a transaction.
	LineItemRequestRepoFactory interface {
		LineItemRequestRepository() ports.LineItemRequestRepository
	}

	// ReskinRequestRepoFactory provides access to the reskin request
	// repository within a transaction.
	ReskinRequestRepoFactory interface {
		ReskinRequestRepository() ports.ReskinRequestRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LineItemRequestUoW manages transactions that resolve a line item
	// request and, on approval, attach the resulting item to its order.
	LineItemRequestUoW interface {
		TxManager
		OrderRepoFactory
		LineItemRequestRepoFactory
	}

	// LineItemRequestUoWFactory creates new line item request unit of work instances.
	LineItemRequestUoWFactory interface {
		Create() LineItemRequestUoW
	}

	// ReskinRequestUoW manages transactions that resolve a reskin request
	// and, on completion, attach the resulting item to its order.
	ReskinRequestUoW interface {
		TxManager
		OrderRepoFactory
		ReskinRequestRepoFactory
	}

	// ReskinRequestUoWFactory creates new reskin request unit of work instances.
	ReskinRequestUoWFactory interface {
		Create() ReskinRequestUoW
	}
)
