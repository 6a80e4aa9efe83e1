package crop

import (
	"errors"
	"strings"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
	"harvesthub/internal/pkg/guard"
)

// ErrImageIsNotConstructed is returned when an Image was not created via NewImage.
var ErrImageIsNotConstructed = errors.New("Image must be created via NewImage constructor")

// Image is a stored picture of a crop. Only the URL is tracked here; the file
// itself lives in external storage.
type Image struct {
	id    kernel.UUID
	url   string
	guard guard.ConstructorGuard
}

func NewImage(id kernel.UUID, url string) (Image, error) {
	if err := id.Validate(); err != nil {
		return Image{}, err
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return Image{}, errs.NewValueIsRequiredError("image url")
	}

	return Image{id: id, url: url, guard: guard.NewConstructorGuard()}, nil
}

func (i Image) Validate() error {
	return i.guard.Validate(ErrImageIsNotConstructed)
}

func (i Image) ID() kernel.UUID {
	return i.id
}

func (i Image) URL() string {
	return i.url
}
