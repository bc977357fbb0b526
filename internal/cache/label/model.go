package label

import (
	"time"

	"orchestrator/internal/entities"
)

type cachedLabel struct {
	ID              int64     `json:"id"`
	ShipmentID      int64     `json:"shipment_id"`
	ReferenceNumber string    `json:"reference_number"`
	URL             string    `json:"url"`
	Format          string    `json:"format"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func fromDomain(l *entities.ShipmentLabel) cachedLabel {
	return cachedLabel{
		ID:              l.ID,
		ShipmentID:      l.ShipmentID,
		ReferenceNumber: l.ReferenceNumber,
		URL:             l.URL,
		Format:          l.Format,
		IsActive:        l.IsActive,
		CreatedAt:       l.CreatedAt,
	}
}

func (c cachedLabel) toDomain() *entities.ShipmentLabel {
	return &entities.ShipmentLabel{
		ID:              c.ID,
		ShipmentID:      c.ShipmentID,
		ReferenceNumber: c.ReferenceNumber,
		URL:             c.URL,
		Format:          c.Format,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}
