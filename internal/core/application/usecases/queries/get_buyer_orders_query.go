package queries

import (
	"errors"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery lists a buyer's own orders, newest first. Buyers learn about
// farmer decisions only through this list.
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery builds the query. A limit of 0 selects the default page
// size; negative limits and limits above the maximum are rejected.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID, limit int) (GetBuyerOrdersQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("buyer id", err)
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return GetBuyerOrdersQuery{}, err
	}
	return GetBuyerOrdersQuery{buyerID: buyerID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return defaultLimit, nil
	}
	if limit < 0 || limit > maxLimit {
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxLimit)
	}
	return limit, nil
}

func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

func (q GetBuyerOrdersQuery) Limit() int {
	return q.limit
}

type GetBuyerOrdersQueryResponse struct {
	ID         kernel.UUID
	CropID     kernel.UUID
	CropName   string
	Unit       string
	FarmerName string
	Quantity   decimal.Decimal
	TotalPrice decimal.Decimal
	OrderDate  time.Time
	Status     string
	ImageURLs  []string
}
