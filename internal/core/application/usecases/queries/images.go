package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// loadImageURLs returns the image URLs of every crop in cropIDs, in listing order.
func loadImageURLs(ctx context.Context, db *gorm.DB, cropIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	urls := make(map[uuid.UUID][]string, len(cropIDs))
	if len(cropIDs) == 0 {
		return urls, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			crop_id,
			url
		FROM crop_images
		WHERE crop_id IN ?
		ORDER BY crop_id, position
	`, cropIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cropID uuid.UUID
		var url string
		if err = rows.Scan(&cropID, &url); err != nil {
			return nil, err
		}
		urls[cropID] = append(urls[cropID], url)
	}

	return urls, rows.Err()
}

func appendUnique(ids []uuid.UUID, seen map[uuid.UUID]struct{}, id uuid.UUID) []uuid.UUID {
	if _, ok := seen[id]; ok {
		return ids
	}
	seen[id] = struct{}{}
	return append(ids, id)
}
