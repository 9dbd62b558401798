package services

import (
	"hmpaquetes/internal/core/domain/model/location"
	"hmpaquetes/internal/core/domain/model/shipment"
)

const (
	CentralWarehouseDays  = 7
	RegionalWarehouseDays = 5
	SentToProvinceDays    = 1
)

// DeliveryEstimator estimates how many days remain before a shipment is delivered.
type DeliveryEstimator struct{}

func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// EstimateDays returns the estimate for a shipment in status held at warehouse.
// warehouse may be nil when the shipment's location is unknown.
//
// Rules:
//   - Recibido at a central warehouse: 7
//   - Recibido anywhere else, or at an unknown location: 5
//   - Enviado: 1
//   - any other status: 0, no estimate
func (DeliveryEstimator) EstimateDays(status shipment.Status, warehouse *location.Location) int {
	switch status {
	case shipment.Received:
		if warehouse.IsCentralWarehouse() {
			return CentralWarehouseDays
		}
		return RegionalWarehouseDays
	case shipment.Sent:
		return SentToProvinceDays
	default:
		return 0
	}
}
