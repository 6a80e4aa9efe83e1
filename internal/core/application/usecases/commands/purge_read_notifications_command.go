package commands

import (
	"errors"
	"time"

	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"
)

var ErrPurgeReadNotificationsCommandIsNotConstructed = errors.New(
	"PurgeReadNotificationsCommand must be created via NewPurgeReadNotificationsCommand constructor",
)

// PurgeReadNotificationsCommand removes notifications that were read and created
// before a cut-off. Unread notifications are never purged.
type PurgeReadNotificationsCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

func NewPurgeReadNotificationsCommand(before time.Time) (PurgeReadNotificationsCommand, error) {
	if before.IsZero() {
		return PurgeReadNotificationsCommand{}, errs.NewValueIsRequiredError("before")
	}

	return PurgeReadNotificationsCommand{
		before: before.UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeReadNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeReadNotificationsCommandIsNotConstructed)
}

func (c PurgeReadNotificationsCommand) Before() time.Time {
	return c.before
}
