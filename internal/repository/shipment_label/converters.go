package shipment_label

import "orchestrator/internal/entities"

func ToDomain(l *ShipmentLabelDB) *entities.ShipmentLabel {
	if l == nil {
		return nil
	}

	return &entities.ShipmentLabel{
		ID:         l.ID,
		ShipmentID: l.ShipmentID,
		URL:        l.URL,
		Format:     l.Format,
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
	}
}
