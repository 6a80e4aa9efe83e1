package notification

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Messages are stored bilingually, English first, then Urdu, separated by " / ".

// OrderPlacedMessage composes the text shown to a farmer for a new order.
func OrderPlacedMessage(buyerName string, quantity decimal.Decimal, unit, cropName string) string {
	return fmt.Sprintf(
		"New order from %s for %s %s of %s / %s کی طرف سے %s %s %s کا نیا آرڈر",
		buyerName, quantity.String(), unit, cropName,
		buyerName, quantity.String(), unit, cropName,
	)
}

// OrderCancelledMessage composes the text shown to a farmer when the buyer cancels.
func OrderCancelledMessage(buyerName string, quantity decimal.Decimal, unit, cropName string) string {
	return fmt.Sprintf(
		"%s cancelled the order for %s %s of %s / %s نے %s %s %s کا آرڈر منسوخ کر دیا ہے۔",
		buyerName, quantity.String(), unit, cropName,
		buyerName, quantity.String(), unit, cropName,
	)
}

// CropDeletedMessage composes the text shown to a farmer whose crop an administrator removed.
func CropDeletedMessage(cropName string) string {
	return fmt.Sprintf(
		"Your crop '%s' has been deleted by the Administrator. / آپ کی فصل '%s' کو منتظم نے حذف کر دیا ہے۔",
		cropName, cropName,
	)
}
