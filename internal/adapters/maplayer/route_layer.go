// Package maplayer renders warehouses and a planned route as GeoJSON for a
// map widget: one blue marker per warehouse and a red polyline in
// visitation order.
package maplayer

import (
	"warehouse-route-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultZoom is the initial zoom level suggested to the map widget.
const DefaultZoom = 5

const (
	markerColor   = "blue"
	routeColor    = "red"
	routeWeight   = 2.5
	routeOpacity  = 1.0
	kindMarker    = "warehouse"
	kindRouteLine = "route"
)

// RouteFeatureCollection builds the map layer for points and an optional route.
//
// The collection carries the mean position of all points as the "center"
// foreign member ([lon, lat]) plus "zoom_start", and a bbox over all points.
// A nil route yields markers only. An empty point set yields an empty
// collection.
func RouteFeatureCollection(points []domain.Warehouse, route *domain.Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(points) == 0 {
		return fc
	}

	markers := make(orb.MultiPoint, 0, len(points))
	var sumLat, sumLon float64

	for i, p := range points {
		pt := p.Coordinates.Point()
		markers = append(markers, pt)
		sumLat += p.Coordinates.Lat
		sumLon += p.Coordinates.Lon

		f := geojson.NewFeature(pt)
		f.Properties["kind"] = kindMarker
		f.Properties["name"] = p.Name
		f.Properties["index"] = i
		f.Properties["marker-color"] = markerColor
		fc.Append(f)
	}

	if route != nil && len(route.Indices) > 1 {
		line := make(orb.LineString, 0, len(route.Indices))
		for _, idx := range route.Indices {
			if idx < 0 || idx >= len(points) {
				continue
			}
			line = append(line, points[idx].Coordinates.Point())
		}

		f := geojson.NewFeature(line)
		f.Properties["kind"] = kindRouteLine
		f.Properties["order"] = route.Order
		f.Properties["total_distance_km"] = route.TotalDistanceKm
		f.Properties["stroke"] = routeColor
		f.Properties["stroke-width"] = routeWeight
		f.Properties["stroke-opacity"] = routeOpacity
		fc.Append(f)
	}

	n := float64(len(points))
	fc.BBox = geojson.NewBBox(markers.Bound())
	fc.ExtraMembers = geojson.Properties{
		"center":     []float64{sumLon / n, sumLat / n},
		"zoom_start": DefaultZoom,
	}

	return fc
}
