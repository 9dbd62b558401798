package services

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"hmpaquetes/internal/core/domain/model/document"
	"hmpaquetes/internal/core/domain/model/shipment"
)

const (
	EventIntake           = "Entrada"
	EventTransfer         = "Transferencia"
	EventReturned         = "Devolución"
	EventDelivered        = "Entrega Exitosa"
	EventDispatched       = "Despachado a Mensajero"
	EventCustoms          = "Aduana"
	FallbackKind          = "sin_tipo"
	unknownLocationFem    = "Desconocida"
	unknownLocationMasc   = "Desconocido"
	notYetWithCarrierText = "El envío aún no ha sido recibido por el transportista."
)

var ErrDocumentMismatch = errors.New("document does not match the item reference")

// Movement is one entry of a shipment timeline.
type Movement struct {
	Event      string
	Detail     string
	Kind       string
	OccurredAt time.Time
}

// HistoryNarrator renders items of a shipment as timeline movements.
//
// Business rules:
//   - Intake items read as "Entrada" at the origin warehouse
//   - Transfer items read as "Transferencia" from origin to destination
//   - Dispatch items read as "Devolución" when returned, else "Entrega Exitosa"
//     when confirmed, else "Despachado a Mensajero"
//   - Missing warehouses render as "Desconocida" or "Desconocido"
//
// Example usage:
//
//	narrator := services.NewHistoryNarrator()
//	var movements []services.Movement
//	for _, item := range items {
//	    m, err := narrator.Describe(item, docs[item.Document()])
//	    if err != nil {
//	        continue // dangling document
//	    }
//	    movements = append(movements, m)
//	}
//	if len(movements) == 0 {
//	    movements = append(movements, narrator.Fallback(s.Status(), now))
//	}
//	movements = narrator.Timeline(movements)
type HistoryNarrator struct{}

func NewHistoryNarrator() HistoryNarrator {
	return HistoryNarrator{}
}

// Describe narrates a single item. doc must be the document the item references.
//
// Returns:
//   - Movement: the timeline entry, dated with the document creation time
//   - error: ErrDocumentMismatch when doc is nil or is not the referenced document
func (HistoryNarrator) Describe(item *document.Item, doc document.Document) (Movement, error) {
	if doc == nil || doc.Ref() != item.Document() {
		return Movement{}, fmt.Errorf("%w: item %d, %s", ErrDocumentMismatch, item.ID(), item.Document())
	}

	m := Movement{
		Kind:       doc.Ref().Kind.String(),
		OccurredAt: doc.CreatedAt(),
	}

	switch d := doc.(type) {
	case *document.Intake:
		m.Event = EventIntake
		m.Detail = fmt.Sprintf("Se da entrada al envío en el almacén <strong>%s</strong>",
			nameOr(d.Origin().Name(), unknownLocationFem))
	case *document.Transfer:
		m.Event = EventTransfer
		m.Detail = fmt.Sprintf("El envío ha arribado al almacén <strong>%s</strong> transferido desde el almacén <strong>%s</strong>.",
			nameOr(d.Destination().Name(), unknownLocationMasc),
			nameOr(d.Origin().Name(), unknownLocationMasc))
	case *document.Dispatch:
		pickedUp := fmt.Sprintf("El mensajero recogió el envío en el centro de distribución <strong>%s</strong> y está en proceso de entrega.",
			nameOr(d.Origin().Name(), unknownLocationMasc))
		switch {
		case item.Returned():
			m.Event = EventReturned
			m.Detail = pickedUp + "<br><br>El envío no fue entregado y se retorna al centro de distribución."
		case item.Confirmed():
			m.Event = EventDelivered
			m.Detail = "Su envío fue entregado satisfactoriamente."
		default:
			m.Event = EventDispatched
			m.Detail = pickedUp
		}
	}

	return m, nil
}

// Fallback is the single entry shown when no item could be narrated.
func (HistoryNarrator) Fallback(status shipment.Status, now time.Time) Movement {
	detail := fmt.Sprintf("Estado %s incorrecto.", status)
	if status.AwaitingCarrier() {
		detail = notYetWithCarrierText
	}

	return Movement{
		Event:      EventCustoms,
		Detail:     detail,
		Kind:       FallbackKind,
		OccurredAt: now,
	}
}

// Timeline orders movements newest first. Movements with the same time keep
// their relative order.
func (HistoryNarrator) Timeline(movements []Movement) []Movement {
	out := slices.Clone(movements)
	slices.SortStableFunc(out, func(a, b Movement) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
	return out
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
