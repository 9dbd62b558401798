package queries

import (
	"errors"

	"hmpaquetes/internal/pkg/guard"
)

var ErrListActiveServicesQueryIsNotConstructed = errors.New(
	"ListActiveServicesQuery must be created via NewListActiveServicesQuery constructor",
)

// ListActiveServicesQuery retrieves the services currently offered for quotation.
type ListActiveServicesQuery struct {
	guard guard.ConstructorGuard
}

func NewListActiveServicesQuery() ListActiveServicesQuery {
	return ListActiveServicesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListActiveServicesQuery) Validate() error {
	return q.guard.Validate(ErrListActiveServicesQueryIsNotConstructed)
}

// ListActiveServicesQueryResponse is one active service.
type ListActiveServicesQueryResponse struct {
	ID          int64
	Name        string
	Description string
}
