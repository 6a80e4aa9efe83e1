package queries

import (
	"context"

	"harvesthub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle returns the buyer's orders of any status with the crop and farmer names
// as they are now. Totals are the amounts fixed when each order was placed.
func (h GetBuyerOrdersQueryHandler) Handle(ctx context.Context, query GetBuyerOrdersQuery) ([]GetBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.crop_id,
			c.name,
			c.unit,
			f.full_name,
			o.quantity,
			o.total_price,
			o.order_date,
			o.status
		FROM orders o
		JOIN crops c ON c.id = o.crop_id
		JOIN farmers f ON f.id = c.farmer_id
		WHERE o.buyer_id = ?
		ORDER BY o.order_date DESC, o.id
		LIMIT ?
	`, query.BuyerID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetBuyerOrdersQueryResponse, 0)
	seen := make(map[uuid.UUID]struct{})
	cropIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var resp GetBuyerOrdersQueryResponse
		var id, cropID uuid.UUID

		err = rows.Scan(
			&id,
			&cropID,
			&resp.CropName,
			&resp.Unit,
			&resp.FarmerName,
			&resp.Quantity,
			&resp.TotalPrice,
			&resp.OrderDate,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CropID, err = kernel.UUIDFromBytes(cropID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
		cropIDs = appendUnique(cropIDs, seen, cropID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	urls, err := loadImageURLs(ctx, h.db, cropIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].ImageURLs = urls[orders[i].CropID.Bytes()]
	}

	return orders, nil
}
