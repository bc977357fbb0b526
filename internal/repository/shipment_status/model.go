package shipment_status

import "time"

type ShipmentStatusDB struct {
	ID         int64
	ShipmentID int64
	Status     string
	Address    string
	PostalCode string
	Country    string
	CreatedAt  time.Time
}
