package party

import "time"

type PartyDB struct {
	ID         int64
	Name       string
	Address    string
	PostalCode string
	City       string
	Country    string
	Phone      string
	Email      string
	CreatedAt  time.Time
}
