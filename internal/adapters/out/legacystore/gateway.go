// Package legacystore mirrors store changes into the legacy store manager. That system has
// no API this service can reach yet, so the gateway records what it would send.
package legacystore

import (
	"context"
	"log/slog"

	"fulfilment/internal/core/domain/model/store"
)

// Gateway implements ports.LegacyStoreGateway by logging each change.
type Gateway struct {
	logger *slog.Logger
}

func NewGateway(logger *slog.Logger) *Gateway {
	return &Gateway{logger: logger.With("component", "legacy_store_gateway")}
}

func (g *Gateway) CreateStoreOnLegacySystem(ctx context.Context, s *store.Store) error {
	return g.mirror(ctx, "Store created on legacy system", s)
}

func (g *Gateway) UpdateStoreOnLegacySystem(ctx context.Context, s *store.Store) error {
	return g.mirror(ctx, "Store updated on legacy system", s)
}

func (g *Gateway) mirror(ctx context.Context, msg string, s *store.Store) error {
	if err := s.Validate(); err != nil {
		return err
	}

	g.logger.InfoContext(ctx, msg,
		"store_id", s.ID(),
		"name", s.Name(),
		"quantity_products_in_stock", s.QuantityProductsInStock(),
	)
	return nil
}
