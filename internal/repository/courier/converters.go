package courier

import (
	"orchestrator/internal/entities"
)

func ToCandidateDomain(c *CandidateDB) *entities.CourierCandidate {
	if c == nil {
		return nil
	}

	return &entities.CourierCandidate{
		Courier: entities.Courier{
			ID:                   c.ID,
			Name:                 c.Name,
			SupportsCancellation: c.SupportsCancellation,
			IsActive:             c.IsActive,
			CreatedAt:            c.CreatedAt,
			UpdatedAt:            c.UpdatedAt,
		},
		UsageCount: c.UsageCount,
	}
}

func ToCandidateDomainList(candidatesDB []CandidateDB) []entities.CourierCandidate {
	if len(candidatesDB) == 0 {
		return []entities.CourierCandidate{}
	}

	result := make([]entities.CourierCandidate, len(candidatesDB))
	for i, candidateDB := range candidatesDB {
		result[i] = *ToCandidateDomain(&candidateDB)
	}
	return result
}

func ToConfigDomain(c *ConfigDB) *entities.CourierConfig {
	if c == nil {
		return nil
	}

	return &entities.CourierConfig{
		CourierID:   c.CourierID,
		CourierName: c.CourierName,
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		APISecret:   c.APISecret,
		Username:    c.Username,
		Password:    c.Password,
		IsActive:    c.IsActive,
		UpdatedAt:   c.UpdatedAt,
	}
}
