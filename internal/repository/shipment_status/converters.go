package shipment_status

import "orchestrator/internal/entities"

func ToDomain(s *ShipmentStatusDB) *entities.ShipmentStatus {
	if s == nil {
		return nil
	}

	return &entities.ShipmentStatus{
		ID:         s.ID,
		ShipmentID: s.ShipmentID,
		Status:     entities.ParseStatusType(s.Status),
		Location: entities.StatusLocation{
			Address:    s.Address,
			PostalCode: s.PostalCode,
			Country:    s.Country,
		},
		CreatedAt: s.CreatedAt,
	}
}

func FromDomain(s *entities.ShipmentStatus) *ShipmentStatusDB {
	if s == nil {
		return nil
	}

	return &ShipmentStatusDB{
		ID:         s.ID,
		ShipmentID: s.ShipmentID,
		Status:     s.Status.String(),
		Address:    s.Location.Address,
		PostalCode: s.Location.PostalCode,
		Country:    s.Location.Country,
		CreatedAt:  s.CreatedAt,
	}
}

func ToDomainList(statuses []ShipmentStatusDB) []entities.ShipmentStatus {
	result := make([]entities.ShipmentStatus, 0, len(statuses))
	for i := range statuses {
		result = append(result, *ToDomain(&statuses[i]))
	}
	return result
}
