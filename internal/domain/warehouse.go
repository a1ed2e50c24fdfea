package domain

import "strings"

// Warehouse is a named point entered into a session working set.
// Names are not required to be unique; two warehouses with the same name
// are distinct nodes.
type Warehouse struct {
	Name        string
	Coordinates Coordinates
}

func NewWarehouse(name string, lat, lon float64) (Warehouse, error) {
	w := Warehouse{
		Name:        strings.TrimSpace(name),
		Coordinates: Coordinates{Lon: lon, Lat: lat},
	}
	if err := w.Validate(-1); err != nil {
		return Warehouse{}, err
	}
	return w, nil
}

// Validate returns a *CoordinateError when the coordinates are out of range.
// index is reported in the error; pass -1 when the warehouse is not part of
// an ordered set yet.
func (w Warehouse) Validate(index int) error {
	if !w.Coordinates.Valid() {
		return &CoordinateError{
			Index: index,
			Name:  w.Name,
			Lat:   w.Coordinates.Lat,
			Lon:   w.Coordinates.Lon,
		}
	}
	return nil
}
