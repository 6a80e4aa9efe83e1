package ports

import (
	"context"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/participant"
)

// BuyerRepository resolves buyers. Account management lives outside this service;
// Add exists so that the store can be seeded.
type BuyerRepository interface {
	Add(ctx context.Context, buyer *participant.Buyer) error
	Get(ctx context.Context, id kernel.UUID) (*participant.Buyer, error)
}

// FarmerRepository resolves farmers.
type FarmerRepository interface {
	Add(ctx context.Context, farmer *participant.Farmer) error
	Get(ctx context.Context, id kernel.UUID) (*participant.Farmer, error)
}
