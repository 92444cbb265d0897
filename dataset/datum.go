package dataset

import (
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

// Datum is a single indexed-and-located measurement point, used for focus
// markers and as the element of any exported single-point projection.
type Datum struct {
	Response             unit.Scalar
	Coordinates          []unit.Scalar
	DependentVariableIndex int
	ComponentIndex       int
	MemoryOffset         int
}

func (d Datum) toDictionary() *value.Mapping {
	m := value.NewMapping()
	m.Set("response", value.FromString(d.Response.String()))
	coords := value.NewArray()
	for _, c := range d.Coordinates {
		coords.Append(value.FromString(c.String()))
	}
	m.Set("coordinates", value.FromArray(coords))
	m.Set("dependent_variable_index", value.FromNumber(value.Int(int64(d.DependentVariableIndex))))
	m.Set("component_index", value.FromNumber(value.Int(int64(d.ComponentIndex))))
	m.Set("memory_offset", value.FromNumber(value.Int(int64(d.MemoryOffset))))
	return m
}

func datumFromDictionary(m *value.Mapping) (Datum, error) {
	var d Datum
	if v, ok := m.Get("response"); ok {
		s, err := v.String()
		if err != nil {
			return Datum{}, err
		}
		sc, err := unit.ParseScalar(s)
		if err != nil {
			return Datum{}, err
		}
		d.Response = sc
	}
	if v, ok := m.Get("coordinates"); ok {
		arr, err := v.Array()
		if err != nil {
			return Datum{}, err
		}
		d.Coordinates = make([]unit.Scalar, arr.Len())
		for i := 0; i < arr.Len(); i++ {
			s, err := arr.At(i).String()
			if err != nil {
				return Datum{}, err
			}
			sc, err := unit.ParseScalar(s)
			if err != nil {
				return Datum{}, err
			}
			d.Coordinates[i] = sc
		}
	}
	if v, ok := m.Get("dependent_variable_index"); ok {
		n, _ := v.Number()
		d.DependentVariableIndex = int(n.Int64())
	}
	if v, ok := m.Get("component_index"); ok {
		n, _ := v.Number()
		d.ComponentIndex = int(n.Int64())
	}
	if v, ok := m.Get("memory_offset"); ok {
		n, _ := v.Number()
		d.MemoryOffset = int(n.Int64())
	}
	return d, nil
}

// GeographicCoordinate pins a dataset to a location: latitude, longitude,
// optional altitude and metadata.
type GeographicCoordinate struct {
	Latitude  unit.Scalar
	Longitude unit.Scalar
	Altitude  *unit.Scalar
	Metadata  *value.Mapping
}

func (g GeographicCoordinate) toDictionary() *value.Mapping {
	m := value.NewMapping()
	m.Set("latitude", value.FromString(g.Latitude.String()))
	m.Set("longitude", value.FromString(g.Longitude.String()))
	if g.Altitude != nil {
		m.Set("altitude", value.FromString(g.Altitude.String()))
	}
	if g.Metadata != nil && g.Metadata.Len() > 0 {
		m.Set("metadata", value.FromMapping(g.Metadata))
	}
	return m
}

func geoFromDictionary(m *value.Mapping) (GeographicCoordinate, error) {
	var g GeographicCoordinate
	if v, ok := m.Get("latitude"); ok {
		s, err := v.String()
		if err != nil {
			return g, err
		}
		sc, err := unit.ParseScalar(s)
		if err != nil {
			return g, err
		}
		g.Latitude = sc
	}
	if v, ok := m.Get("longitude"); ok {
		s, err := v.String()
		if err != nil {
			return g, err
		}
		sc, err := unit.ParseScalar(s)
		if err != nil {
			return g, err
		}
		g.Longitude = sc
	}
	if v, ok := m.Get("altitude"); ok {
		s, err := v.String()
		if err == nil {
			sc, err := unit.ParseScalar(s)
			if err == nil {
				g.Altitude = &sc
			}
		}
	}
	if v, ok := m.Get("metadata"); ok {
		mm, err := v.Mapping()
		if err == nil {
			g.Metadata = mm
		}
	}
	return g, nil
}
