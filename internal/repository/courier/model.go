package courier

import "time"

type CandidateDB struct {
	ID                   int64
	Name                 string
	SupportsCancellation bool
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
	UsageCount           int64
}

type ConfigDB struct {
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
