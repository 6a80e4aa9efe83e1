package commands

import (
	"errors"
	"fmt"
	"strings"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"
)

var ErrRespondToOrderCommandIsNotConstructed = errors.New(
	"RespondToOrderCommand must be created via NewRespondToOrderCommand constructor",
)

// Decision is a farmer's answer to a pending order.
type Decision int

const (
	UnknownDecision Decision = iota
	Accept
	Reject
)

// ParseDecision resolves "accept" or "reject", case-insensitively.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept":
		return Accept, nil
	case "reject":
		return Reject, nil
	default:
		return UnknownDecision, errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("%q is not one of accept, reject", s),
		)
	}
}

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

func (d Decision) Validate() error {
	if d != Accept && d != Reject {
		return errs.NewValueIsInvalidError("decision")
	}
	return nil
}

// RespondToOrderCommand carries a farmer's decision on a pending order. The
// notification that prompted the decision, if any, is marked read in the same
// transaction.
type RespondToOrderCommand struct { //nolint:recvcheck //using for validation
	farmerID       kernel.UUID
	orderID        kernel.UUID
	notificationID *kernel.UUID
	decision       Decision

	guard guard.ConstructorGuard
}

func NewRespondToOrderCommand(
	farmerID, orderID kernel.UUID,
	notificationID *kernel.UUID,
	decision Decision,
) (RespondToOrderCommand, error) {
	cmd := RespondToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("farmer id", farmerID),
		requireID("order id", orderID),
		optionalID("notification id", notificationID),
		decision.Validate(),
	); err != nil {
		return RespondToOrderCommand{}, err
	}

	cmd.farmerID = farmerID
	cmd.orderID = orderID
	cmd.notificationID = copyID(notificationID)
	cmd.decision = decision

	return cmd, nil
}

func (c RespondToOrderCommand) Validate() error {
	return c.guard.Validate(ErrRespondToOrderCommandIsNotConstructed)
}

func (c RespondToOrderCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c RespondToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NotificationID returns the triggering notification, or nil.
func (c RespondToOrderCommand) NotificationID() *kernel.UUID {
	return copyID(c.notificationID)
}

func (c RespondToOrderCommand) Decision() Decision {
	return c.decision
}
