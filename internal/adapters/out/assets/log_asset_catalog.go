// Package assets provides the asset catalog collaborator. The catalog of
// physical assets lives in a separate inventory system; this adapter logs
// the transformation mark that completing a reskin sends there.
package assets

import (
	"context"
	"log/slog"

	"rentops/internal/core/domain/model/kernel"
)

// LogAssetCatalog records asset transformations in the structured log.
type LogAssetCatalog struct {
	logger *slog.Logger
}

// NewLogAssetCatalog creates a catalog that writes marks to the given logger.
func NewLogAssetCatalog(logger *slog.Logger) *LogAssetCatalog {
	return &LogAssetCatalog{logger: logger.With("component", "asset_catalog")}
}

// MarkTransformed flags the source asset as consumed by a reskin.
func (c *LogAssetCatalog) MarkTransformed(ctx context.Context, assetID kernel.UUID, newAssetName string) error {
	c.logger.InfoContext(ctx, "Asset marked transformed",
		"assetId", assetID.String(), "newAssetName", newAssetName)
	return nil
}
