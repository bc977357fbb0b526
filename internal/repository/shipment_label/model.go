package shipment_label

import "time"

type ShipmentLabelDB struct {
	ID         int64
	ShipmentID int64
	URL        string
	Format     string
	IsActive   bool
	CreatedAt  time.Time
}
