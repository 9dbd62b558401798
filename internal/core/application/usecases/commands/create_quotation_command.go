package commands

import (
	"errors"
	"strconv"
	"strings"

	"hmpaquetes/internal/core/domain/model/quotation"
	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var (
	ErrCreateQuotationCommandIsNotConstructed = errors.New(
		"CreateQuotationCommand must be created via NewCreateQuotationCommand constructor",
	)
)

// CreateQuotationCommand carries a quotation request as submitted by the web form.
// The service id arrives as text and is validated here, before any database work.
//
// Example:
//
//	cmd, err := NewCreateQuotationCommand("Ana", "ana@example.com", "3", "Dos cajas")
//	if err != nil {
//	    return err // validation error
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateQuotationCommand struct {
	clientName string
	email      string
	serviceID  int64
	details    string

	guard guard.ConstructorGuard
}

func NewCreateQuotationCommand(clientName, email, serviceID, details string) (CreateQuotationCommand, error) {
	c := CreateQuotationCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setClientName(clientName),
		c.setEmail(email),
		c.setServiceID(serviceID),
	); err != nil {
		return CreateQuotationCommand{}, err
	}

	return c, nil
}

func (c CreateQuotationCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuotationCommandIsNotConstructed)
}

func (c CreateQuotationCommand) ClientName() string {
	return c.clientName
}

func (c CreateQuotationCommand) Email() string {
	return c.email
}

func (c CreateQuotationCommand) ServiceID() int64 {
	return c.serviceID
}

func (c CreateQuotationCommand) Details() string {
	return c.details
}

func (c *CreateQuotationCommand) setClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return quotation.ErrNameIsRequired
	}
	c.clientName = name
	return nil
}

func (c *CreateQuotationCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return quotation.ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *CreateQuotationCommand) setServiceID(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return quotation.ErrServicesAreRequired
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("servicios", errors.New("service id must be a positive integer: "+raw))
	}
	c.serviceID = id
	return nil
}
