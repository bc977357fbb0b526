package reference

import "time"

type ShipmentTypeDB struct {
	ID          int64
	Name        string
	Description string
}

type RouteDB struct {
	ID          int64
	Origin      string
	Destination string
	CreatedAt   time.Time
}
