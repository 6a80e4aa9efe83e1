package participant

import (
	"errors"
	"strings"
	"unicode/utf8"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

const maxFullNameLength = 200

var (
	ErrBuyerIsNotConstructed  = errors.New("Buyer must be created via NewBuyer constructor")
	ErrFarmerIsNotConstructed = errors.New("Farmer must be created via NewFarmer constructor")
)

// Buyer is the purchasing side of an order. Only the identity and the display
// name are needed here; accounts are managed elsewhere.
type Buyer struct {
	id       kernel.UUID
	fullName string

	isConstructed bool
}

func NewBuyer(id kernel.UUID, fullName string) (*Buyer, error) {
	name, err := normalizeName(id, fullName)
	if err != nil {
		return nil, err
	}
	return &Buyer{id: id, fullName: name, isConstructed: true}, nil
}

func (b *Buyer) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBuyerIsNotConstructed
	}
	return nil
}

func (b *Buyer) ID() kernel.UUID {
	return b.id
}

func (b *Buyer) FullName() string {
	return b.fullName
}

// Farmer owns crops and receives notifications.
type Farmer struct {
	id       kernel.UUID
	fullName string

	isConstructed bool
}

func NewFarmer(id kernel.UUID, fullName string) (*Farmer, error) {
	name, err := normalizeName(id, fullName)
	if err != nil {
		return nil, err
	}
	return &Farmer{id: id, fullName: name, isConstructed: true}, nil
}

func (f *Farmer) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFarmerIsNotConstructed
	}
	return nil
}

func (f *Farmer) ID() kernel.UUID {
	return f.id
}

func (f *Farmer) FullName() string {
	return f.fullName
}

func normalizeName(id kernel.UUID, fullName string) (string, error) {
	fullName = strings.TrimSpace(fullName)

	var nameErr error
	switch n := utf8.RuneCountInString(fullName); {
	case n == 0:
		nameErr = errs.NewValueIsRequiredError("full name")
	case n > maxFullNameLength:
		nameErr = errs.NewValueIsOutOfRangeError("full name length", n, 1, maxFullNameLength)
	}

	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return "", err
	}
	return fullName, nil
}
