package dto

import "warehouse-route-service/internal/domain"

func NewWarehouseResponses(ws []domain.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(ws))
	for i, w := range ws {
		out = append(out, WarehouseResponse{
			Index:     i,
			Name:      w.Name,
			Latitude:  w.Coordinates.Lat,
			Longitude: w.Coordinates.Lon,
		})
	}
	return out
}

func NewRouteResponse(r *domain.Route) *RouteResponse {
	if r == nil {
		return nil
	}

	legs := make([]RouteLegResponse, 0, len(r.Legs))
	for _, l := range r.Legs {
		legs = append(legs, RouteLegResponse{
			FromIndex:  l.FromIndex,
			ToIndex:    l.ToIndex,
			From:       l.From,
			To:         l.To,
			DistanceKm: l.DistanceKm,
		})
	}

	return &RouteResponse{
		StartIndex:      r.StartIndex,
		Order:           r.Order,
		Indices:         r.Indices,
		Legs:            legs,
		TotalDistanceKm: r.TotalDistanceKm,
	}
}
