package quotation

import (
	"errors"
	"strings"
	"time"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var (
	ErrQuotationIsNotConstructed = errors.New("Quotation must be created via NewQuotation")
	ErrNameIsRequired            = errs.NewValueIsRequiredError("nombre")
	ErrEmailIsRequired           = errs.NewValueIsRequiredError("email")
	ErrServicesAreRequired       = errs.NewValueIsRequiredError("servicios")
)

// Quotation is a client's request for one or more services.
type Quotation struct { //nolint:recvcheck //setters need pointer receivers
	id          int64
	clientName  string
	email       string
	details     string
	services    []*Service
	attended    bool
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewQuotation creates an unattended quotation. At least one service is required.
func NewQuotation(clientName, email, details string, requestedAt time.Time, services ...*Service) (*Quotation, error) {
	q := &Quotation{
		details:     details,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setClientName(clientName),
		q.setEmail(email),
		q.setServices(services),
	); err != nil {
		return nil, err
	}

	return q, nil
}

func (q *Quotation) Validate() error {
	if q == nil {
		return ErrQuotationIsNotConstructed
	}
	return q.guard.Validate(ErrQuotationIsNotConstructed)
}

func (q *Quotation) AssignID(id int64) error {
	if q.id != 0 {
		return errors.New("quotation already has an id")
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}
	q.id = id
	return nil
}

func (q *Quotation) ID() int64 {
	return q.id
}

func (q *Quotation) ClientName() string {
	return q.clientName
}

func (q *Quotation) Email() string {
	return q.email
}

func (q *Quotation) Details() string {
	return q.details
}

func (q *Quotation) Services() []*Service {
	out := make([]*Service, len(q.services))
	copy(out, q.services)
	return out
}

func (q *Quotation) Attended() bool {
	return q.attended
}

func (q *Quotation) RequestedAt() time.Time {
	return q.requestedAt
}

func (q *Quotation) setClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	q.clientName = name
	return nil
}

func (q *Quotation) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	q.email = email
	return nil
}

func (q *Quotation) setServices(services []*Service) error {
	if len(services) == 0 {
		return ErrServicesAreRequired
	}

	seen := make(map[int64]struct{}, len(services))
	for _, s := range services {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, dup := seen[s.ID()]; dup {
			continue
		}
		seen[s.ID()] = struct{}{}
		q.services = append(q.services, s)
	}
	return nil
}
