// Package crop models a farmer's crop listing: the Crop aggregate, its images and
// the Variety enumeration.
//
// A crop with active (non-cancelled) orders cannot be deleted; the deletion
// rules themselves live in the services package because they span crops, orders,
// notifications and conversations.
package crop
