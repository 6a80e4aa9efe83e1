package queries

import (
	"context"
	"database/sql"

	"harvesthub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListFarmerNotificationsQueryHandler reads the notification list with the order,
// buyer and crop joined in. Joins are outer joins so that notifications without
// an order render from their snapshot fields alone.
type ListFarmerNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListFarmerNotificationsQueryHandler(db *gorm.DB) ListFarmerNotificationsQueryHandler {
	return ListFarmerNotificationsQueryHandler{db: db}
}

func (h ListFarmerNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListFarmerNotificationsQuery,
) ([]ListFarmerNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			n.id,
			n.order_id,
			n.notification_type,
			n.buyer_name,
			n.crop_name,
			n.quantity,
			n.total_price,
			n.is_read,
			n.created_at,
			n.message,
			o.status,
			o.order_date,
			o.crop_id,
			b.full_name,
			c.name
		FROM notifications n
		LEFT JOIN orders o ON o.id = n.order_id
		LEFT JOIN buyers b ON b.id = o.buyer_id
		LEFT JOIN crops c ON c.id = o.crop_id
		WHERE n.farmer_id = ?
		ORDER BY n.created_at DESC, n.id
	`, query.FarmerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ListFarmerNotificationsQueryResponse, 0)
	itemCrops := make([]uuid.NullUUID, 0)

	for rows.Next() {
		var (
			item       ListFarmerNotificationsQueryResponse
			id         uuid.UUID
			orderID    uuid.NullUUID
			quantity   decimal.NullDecimal
			totalPrice decimal.NullDecimal
			status     sql.NullString
			orderDate  sql.NullTime
			cropID     uuid.NullUUID
			buyerName  sql.NullString
			cropName   sql.NullString
		)

		err = rows.Scan(
			&id,
			&orderID,
			&item.Type,
			&item.BuyerName,
			&item.CropName,
			&quantity,
			&totalPrice,
			&item.IsRead,
			&item.CreatedAt,
			&item.Message,
			&status,
			&orderDate,
			&cropID,
			&buyerName,
			&cropName,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderID.Valid {
			oid, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			item.OrderID = &oid
		}
		if quantity.Valid {
			item.Quantity = &quantity.Decimal
		}
		if totalPrice.Valid {
			item.TotalPrice = &totalPrice.Decimal
		}
		if status.Valid {
			item.Order = &NotificationOrderView{
				Status:    status.String,
				OrderDate: orderDate.Time,
				BuyerName: buyerName.String,
				CropName:  cropName.String,
			}
		}

		items = append(items, item)
		itemCrops = append(itemCrops, cropID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	cropIDs := make([]uuid.UUID, 0)
	for _, cropID := range itemCrops {
		if cropID.Valid {
			cropIDs = appendUnique(cropIDs, seen, cropID.UUID)
		}
	}

	urls, err := loadImageURLs(ctx, h.db, cropIDs)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Order != nil && itemCrops[i].Valid {
			items[i].Order.ImageURLs = urls[itemCrops[i].UUID]
		}
	}

	return items, nil
}
