package queries

import (
	"errors"
	"strings"

	"hmpaquetes/internal/pkg/errs"
	"hmpaquetes/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery asks for the public tracking history of a shipment.
//
// Example:
//
//	query, err := NewGetShipmentHistoryQuery("abc123")
//	if err != nil {
//	    return err
//	}
//	history, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking code
//	}
type GetShipmentHistoryQuery struct {
	code string

	guard guard.ConstructorGuard
}

func NewGetShipmentHistoryQuery(code string) (GetShipmentHistoryQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetShipmentHistoryQuery{}, errs.NewValueIsRequiredError("codigo")
	}
	return GetShipmentHistoryQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentHistoryQuery) Code() string {
	return q.code
}

func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// ShipmentSummary is the current state of a shipment as shown to its recipient.
type ShipmentSummary struct {
	Code          string
	Status        string
	Warehouse     string
	EstimatedDays int
	PhotoURL      string
}

// HistoryEntry is one rendered timeline line. Date is already formatted.
type HistoryEntry struct {
	Event  string
	Date   string
	Detail string
	Kind   string
}

// GetShipmentHistoryQueryResponse holds the summary and the timeline, newest first.
// Message is set only when the shipment has no items at all.
type GetShipmentHistoryQueryResponse struct {
	Shipment ShipmentSummary
	History  []HistoryEntry
	Message  string
}
