package party

import "orchestrator/internal/entities"

func ToDomain(p *PartyDB) *entities.Party {
	if p == nil {
		return nil
	}
	return &entities.Party{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		PostalCode: p.PostalCode,
		City:       p.City,
		Country:    p.Country,
		Phone:      p.Phone,
		Email:      p.Email,
		CreatedAt:  p.CreatedAt,
	}
}

func FromDomain(p *entities.Party) *PartyDB {
	if p == nil {
		return nil
	}
	return &PartyDB{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		PostalCode: p.PostalCode,
		City:       p.City,
		Country:    p.Country,
		Phone:      p.Phone,
		Email:      p.Email,
		CreatedAt:  p.CreatedAt,
	}
}
