package shipment

import "hmpaquetes/internal/core/domain/model/kernel"

// MessengerBaseFee is the flat fee paid per parcel in the lightest tier.
const MessengerBaseFee = 400.0

// CalculateMessengerPayment returns the fee owed to the messenger for a parcel.
// An unknown weight pays nothing.
func CalculateMessengerPayment(weight kernel.Weight) float64 {
	pounds, ok := weight.Pounds()
	if !ok {
		return 0
	}
	return MessengerPaymentForPounds(pounds)
}

// MessengerPaymentForPounds applies the tier table. Upper bounds are inclusive.
// Parcels above 200 lb have no tier and pay 0.
func MessengerPaymentForPounds(pounds float64) float64 {
	switch {
	case pounds <= 50:
		return MessengerBaseFee
	case pounds <= 100:
		return MessengerBaseFee * 2
	case pounds <= 150:
		return MessengerBaseFee * 2.5
	case pounds <= 200:
		return MessengerBaseFee * 3
	default:
		return 0
	}
}
