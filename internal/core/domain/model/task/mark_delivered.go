package task

import (
	"encoding/json"
	"strings"
	"time"

	"hmpaquetes/internal/pkg/errs"
)

const deliveryDateLayout = "2006-01-02"

// MarkDeliveredPayload is the data of a marcar_entregado task.
type MarkDeliveredPayload struct {
	ItemID      int64  `json:"item_id"`
	DeliveredOn string `json:"fecha_entrega,omitempty"`
	Photo       string `json:"foto_entrega,omitempty"`
}

// MarkDeliveredResult is stored on a completed marcar_entregado task.
type MarkDeliveredResult struct {
	ShipmentCode string `json:"envio"`
}

// DecodeMarkDelivered reads the payload of a marcar_entregado task.
func (t *Task) DecodeMarkDelivered() (MarkDeliveredPayload, error) {
	var p MarkDeliveredPayload
	if t.typ != TypeMarkDelivered {
		return p, errs.NewInvalidOperationError("decode payload", "task is not "+string(TypeMarkDelivered))
	}
	if err := json.Unmarshal(t.payload, &p); err != nil {
		return p, errs.NewValueIsInvalidErrorWithCause("datos", err)
	}
	if p.ItemID <= 0 {
		return p, errs.NewValueIsRequiredError("item_id")
	}
	return p, nil
}

// DeliveryDate parses fecha_entrega in loc, falling back to the date of now.
func (p MarkDeliveredPayload) DeliveryDate(now time.Time, loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(p.DeliveredOn)
	if raw == "" {
		y, m, d := now.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	on, err := time.ParseInLocation(deliveryDateLayout, raw, loc)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("fecha_entrega", err)
	}
	return on, nil
}
