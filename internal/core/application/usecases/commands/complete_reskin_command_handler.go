package commands

import (
	"context"

	"rentops/internal/core/ports"
)

// CompleteReskinCommandHandler finishes an asset reskin: the request is
// resolved, the resulting Reskin line item is attached to the order past
// any ledger edit window, and the inventory system is told to rename the
// source asset. The asset rename happens only after the commit; inventory
// is an external collaborator and must not hold our transaction open.
type CompleteReskinCommandHandler struct {
	uowFactory ReskinRequestUoWFactory
	assets     ports.AssetCatalog
}

// NewCompleteReskinCommandHandler creates a handler for reskin completion.
func NewCompleteReskinCommandHandler(uowFactory ReskinRequestUoWFactory, assets ports.AssetCatalog) CompleteReskinCommandHandler {
	return CompleteReskinCommandHandler{
		uowFactory: uowFactory,
		assets:     assets,
	}
}

// Handle processes the completion command.
func (h *CompleteReskinCommandHandler) Handle(ctx context.Context, cmd CompleteReskinCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.ReskinRequestRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	item, err := request.Complete(cmd.ItemID(), cmd.NewAssetName(), cmd.CompletionPhotos(), cmd.Cost())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, request.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AttachReskinLineItem(item); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.assets.MarkTransformed(ctx, request.SourceAssetID(), cmd.NewAssetName())
}
