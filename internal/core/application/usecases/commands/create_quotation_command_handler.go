package commands

import (
	"context"
	"errors"
	"time"

	"hmpaquetes/internal/core/domain/model/quotation"
	"hmpaquetes/internal/pkg/errs"
)

// CreateQuotationCommandHandler stores a quotation together with its requested service.
// The service must exist before anything is written, and the quotation row and its
// association are committed in one transaction.
//
// Example:
//
//	handler := NewCreateQuotationCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("unknown service")
//	case err != nil:
//	    log.Printf("quotation failed: %v", err)
//	}
type CreateQuotationCommandHandler struct {
	uowFactory QuotationUoWFactory
	now        func() time.Time
}

func NewCreateQuotationCommandHandler(uowFactory QuotationUoWFactory) CreateQuotationCommandHandler {
	return CreateQuotationCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the id of the new quotation.
func (h CreateQuotationCommandHandler) Handle(ctx context.Context, command CreateQuotationCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	service, err := uow.ServiceRepository().Get(ctx, command.ServiceID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 0, errs.NewObjectNotFoundErrorWithCause("servicios", command.ServiceID(), err)
	}
	if err != nil {
		return 0, err
	}

	q, err := quotation.NewQuotation(
		command.ClientName(),
		command.Email(),
		command.Details(),
		h.now(),
		service,
	)
	if err != nil {
		return 0, err
	}

	if err = uow.QuotationRepository().Add(ctx, q); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return q.ID(), nil
}
