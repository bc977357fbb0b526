package shipment

import (
	"time"

	"github.com/shopspring/decimal"
	"orchestrator/internal/entities"
)

const pickupDateLayout = "2006-01-02"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipment := &entities.Shipment{
		ID:                s.ID,
		ReferenceNumber:   s.ReferenceNumber,
		CourierID:         s.CourierID,
		CourierName:       s.CourierName,
		ShipmentTypeID:    s.ShipmentTypeID,
		CourierExternalID: s.CourierExternalID,
		ShipperID:         s.ShipperID,
		ConsigneeID:       s.ConsigneeID,
		RouteID:           s.RouteID,
		Weight: entities.Weight{
			Value: s.Weight,
			Unit:  entities.WeightUnit(s.WeightUnit),
		},
		Dimensions: entities.Dimensions{
			Height: s.Height.Decimal,
			Width:  s.Width.Decimal,
			Length: s.Length.Decimal,
		},
		SpecialInstructions: s.SpecialInstructions,
		CreatedAt:           s.CreatedAt,
	}
	if s.DimensionUnit != nil {
		shipment.Dimensions.Unit = entities.DimensionUnit(*s.DimensionUnit)
	}
	if s.PickupDate != nil {
		shipment.PickupDate = s.PickupDate.Format(pickupDateLayout)
	}

	return shipment
}

func nullDecimal(value decimal.Decimal, valid bool) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: value, Valid: valid}
}

// FromDomainCreate нулевые габариты и пустая дата забора пишутся как NULL.
func FromDomainCreate(s *entities.ShipmentCreate) *ShipmentDB {
	if s == nil {
		return nil
	}

	hasDimensions := !s.Dimensions.IsZero()
	shipmentDB := &ShipmentDB{
		ReferenceNumber:     s.ReferenceNumber,
		CourierID:           s.CourierID,
		ShipmentTypeID:      s.ShipmentTypeID,
		CourierExternalID:   s.CourierExternalID,
		ShipperID:           s.ShipperID,
		ConsigneeID:         s.ConsigneeID,
		RouteID:             s.RouteID,
		Weight:              s.Weight.Value,
		WeightUnit:          s.Weight.Unit.String(),
		Height:              nullDecimal(s.Dimensions.Height, hasDimensions),
		Width:               nullDecimal(s.Dimensions.Width, hasDimensions),
		Length:              nullDecimal(s.Dimensions.Length, hasDimensions),
		SpecialInstructions: s.SpecialInstructions,
	}
	if hasDimensions {
		unit := s.Dimensions.Unit.String()
		shipmentDB.DimensionUnit = &unit
	}
	if pickupDate, err := time.Parse(pickupDateLayout, s.PickupDate); err == nil {
		shipmentDB.PickupDate = &pickupDate
	}

	return shipmentDB
}

func toPartyDomain(p *PartyDB) entities.Party {
	return entities.Party{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		PostalCode: p.PostalCode,
		City:       p.City,
		Country:    p.Country,
		Phone:      p.Phone,
		Email:      p.Email,
		CreatedAt:  p.CreatedAt,
	}
}

func ToDetailsDomain(d *ShipmentDetailsDB) *entities.ShipmentDetails {
	if d == nil {
		return nil
	}

	return &entities.ShipmentDetails{
		Shipment:  *ToDomain(&d.Shipment),
		Shipper:   toPartyDomain(&d.Shipper),
		Consignee: toPartyDomain(&d.Consignee),
		Courier: entities.Courier{
			ID:                   d.Courier.ID,
			Name:                 d.Courier.Name,
			SupportsCancellation: d.Courier.SupportsCancellation,
			IsActive:             d.Courier.IsActive,
			CreatedAt:            d.Courier.CreatedAt,
			UpdatedAt:            d.Courier.UpdatedAt,
		},
	}
}
