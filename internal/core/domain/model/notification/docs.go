// Package notification implements the farmer-facing Notification aggregate.
//
// Notifications are created synchronously, in the same transaction as the order or
// crop change they describe. They carry denormalized snapshots of the buyer, crop
// and amounts involved and a bilingual (English / Urdu) message. Buyers are not
// notified of farmer decisions; they read their order list instead.
package notification
