package ports

import (
	"context"

	"rentops/internal/core/domain/model/kernel"
)

// AssetCatalog is the inventory system holding the rentable assets. The
// order core only touches it when a reskin completes and the source asset
// becomes a new branded asset.
type AssetCatalog interface {
	// MarkTransformed renames the asset and flags it as reskinned.
	MarkTransformed(ctx context.Context, assetID kernel.UUID, newAssetName string) error
}
