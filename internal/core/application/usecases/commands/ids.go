package commands

import (
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func optionalID(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return requireID(name, *id)
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
