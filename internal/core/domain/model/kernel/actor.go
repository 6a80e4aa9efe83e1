package kernel

import (
	"errors"
	"fmt"
	"strings"

	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role is the marketplace role an actor holds for the duration of a request.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Buyer
	Farmer
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Buyer:       "Buyer",
		Farmer:      "Farmer",
		Admin:       "Admin",
	}
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && strings.EqualFold(name, strings.TrimSpace(s)) {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if r == Buyer || r == Farmer || r == Admin {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
}

// Actor is the identity on whose behalf a core operation runs. It is passed
// explicitly to commands instead of being read from ambient session state.
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}
