package location

import (
	"errors"
	"strings"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation")

// Location is a warehouse or distribution center.
type Location struct {
	id                 int64
	name               string
	provinceID         int64
	allowsClearance    bool
	isCentralWarehouse bool

	guard guard.ConstructorGuard
}

func NewLocation(id int64, name string, provinceID int64, allowsClearance, isCentralWarehouse bool) (*Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}

	return &Location{
		id:                 id,
		name:               name,
		provinceID:         provinceID,
		allowsClearance:    allowsClearance,
		isCentralWarehouse: isCentralWarehouse,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) ID() int64 {
	return l.id
}

// Name returns the warehouse name; a nil Location has no name.
func (l *Location) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

func (l *Location) ProvinceID() int64 {
	return l.provinceID
}

func (l *Location) AllowsClearance() bool {
	return l.allowsClearance
}

// IsCentralWarehouse reports whether the location is a central warehouse.
// Nil is treated as not central.
func (l *Location) IsCentralWarehouse() bool {
	return l != nil && l.isCentralWarehouse
}
