package entities

import "time"

// Party - отправитель или получатель. Email - естественный ключ дедупликации внутри своей таблицы.
type Party struct {
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

type PartyKind string

const (
	Shipper   PartyKind = "shipper"
	Consignee PartyKind = "consignee"
)

func (k PartyKind) String() string {
	return string(k)
}

// FullAddress адрес в виде "улица, город" для начальной записи статуса.
func (p Party) FullAddress() string {
	switch {
	case p.Address == "":
		return p.City
	case p.City == "":
		return p.Address
	default:
		return p.Address + ", " + p.City
	}
}
