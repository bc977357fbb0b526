package entities

import (
	"time"
)

type Courier struct {
	ID                   int64
	Name                 string
	SupportsCancellation bool
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CourierCandidate курьер, прошедший фильтр по типу и маршруту, с нагрузкой за окно выбора.
type CourierCandidate struct {
	Courier    Courier
	UsageCount int64
}

// CourierConfig учетные данные адаптера. Хранятся в БД, шифрование вне зоны этого сервиса.
type CourierConfig struct {
	CourierID   int64
	CourierName string
	BaseURL     string
	APIKey      string
	APISecret   string
	Username    string
	Password    string
	IsActive    bool
	UpdatedAt   time.Time
}

type ShipmentType struct {
	ID          int64
	Name        string
	Description string
}

type Route struct {
	ID          int64
	Origin      string
	Destination string
	CreatedAt   time.Time
}
