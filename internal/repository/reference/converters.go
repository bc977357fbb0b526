package reference

import "orchestrator/internal/entities"

func ToShipmentTypeDomain(s *ShipmentTypeDB) *entities.ShipmentType {
	if s == nil {
		return nil
	}
	return &entities.ShipmentType{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
}

func ToRouteDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}
	return &entities.Route{
		ID:          r.ID,
		Origin:      r.Origin,
		Destination: r.Destination,
		CreatedAt:   r.CreatedAt,
	}
}
