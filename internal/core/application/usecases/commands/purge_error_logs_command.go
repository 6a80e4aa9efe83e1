package commands

import (
	"errors"
	"time"

	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"
)

var ErrPurgeErrorLogsCommandIsNotConstructed = errors.New(
	"PurgeErrorLogsCommand must be created via NewPurgeErrorLogsCommand constructor",
)

// PurgeErrorLogsCommand removes diagnostic entries recorded before a cut-off.
type PurgeErrorLogsCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

func NewPurgeErrorLogsCommand(before time.Time) (PurgeErrorLogsCommand, error) {
	if before.IsZero() {
		return PurgeErrorLogsCommand{}, errs.NewValueIsRequiredError("before")
	}

	return PurgeErrorLogsCommand{
		before: before.UTC(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeErrorLogsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeErrorLogsCommandIsNotConstructed)
}

func (c PurgeErrorLogsCommand) Before() time.Time {
	return c.before
}
