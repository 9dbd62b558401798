// Package shipmentrepo persists the shipment aggregate in hmpaquetesapp_envio.
package shipmentrepo

import (
	"time"

	"hmpaquetes/internal/core/domain/model/kernel"
	"hmpaquetes/internal/core/domain/model/shipment"
)

// ShipmentDTO is one row of hmpaquetesapp_envio. Recipient and manifest
// columns are not mapped.
type ShipmentDTO struct {
	ID                       int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Code                     string     `gorm:"column:no_envio"`
	Weight                   float64    `gorm:"column:peso"`
	OriginDestinationCountry string     `gorm:"column:pais_origen_destino"`
	Description              string     `gorm:"column:descripcion"`
	ImposedOn                *time.Time `gorm:"column:fecha_imposicion;type:date"`
	Tariff                   float64    `gorm:"column:arancel"`
	DutiesPaid               bool       `gorm:"column:aranceles_pagados"`
	HomeDelivery             bool       `gorm:"column:entrega_domicilio"`
	ReceivedOn               *time.Time `gorm:"column:fecha_recepcion;type:date"`
	Location                 *string    `gorm:"column:locacion"`
	DeliveryPhoto            *string    `gorm:"column:foto_entrega"`
	DeliveredOn              *time.Time `gorm:"column:fecha_entrega;type:date"`
	Status                   string     `gorm:"column:estado"`
	MessengerPayment         float64    `gorm:"column:pago_mensajero"`
	Observation              string     `gorm:"column:observacion"`
}

func (ShipmentDTO) TableName() string {
	return "hmpaquetesapp_envio"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	snap := s.Snapshot()
	kg, _ := snap.Weight.Kilograms()

	return ShipmentDTO{
		ID:                       snap.ID,
		Code:                     snap.Code,
		Weight:                   kg,
		OriginDestinationCountry: snap.OriginDestinationCountry,
		Description:              snap.Description,
		ImposedOn:                snap.ImposedOn,
		Tariff:                   snap.Tariff,
		DutiesPaid:               snap.DutiesPaid,
		HomeDelivery:             snap.HomeDelivery,
		ReceivedOn:               snap.ReceivedOn,
		Location:                 nullable(snap.Location),
		DeliveryPhoto:            nullable(snap.DeliveryPhoto),
		DeliveredOn:              snap.DeliveredOn,
		Status:                   snap.Status.String(),
		MessengerPayment:         snap.MessengerPayment,
		Observation:              snap.Observation,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	return shipment.Restore(shipment.Snapshot{
		ID:                       dto.ID,
		Code:                     dto.Code,
		Weight:                   kernel.NewWeight(dto.Weight),
		OriginDestinationCountry: dto.OriginDestinationCountry,
		Description:              dto.Description,
		ImposedOn:                dto.ImposedOn,
		ReceivedOn:               dto.ReceivedOn,
		DeliveredOn:              dto.DeliveredOn,
		Tariff:                   dto.Tariff,
		DutiesPaid:               dto.DutiesPaid,
		HomeDelivery:             dto.HomeDelivery,
		MessengerPayment:         dto.MessengerPayment,
		DeliveryPhoto:            value(dto.DeliveryPhoto),
		Location:                 value(dto.Location),
		Status:                   shipment.Status(dto.Status),
		Observation:              dto.Observation,
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
