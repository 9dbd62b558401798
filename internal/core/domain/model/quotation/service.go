package quotation

import (
	"errors"
	"strings"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via RestoreService")

// Service is an offering clients can request a quotation for.
type Service struct {
	id          int64
	name        string
	description string
	active      bool

	guard guard.ConstructorGuard
}

func RestoreService(id int64, name, description string, active bool) (*Service, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}

	return &Service{
		id:          id,
		name:        name,
		description: description,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) ID() int64 {
	return s.id
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) Description() string {
	return s.description
}

func (s *Service) Active() bool {
	return s.active
}
