package kmlift

import (
	"github.com/cockroachdb/apd/v3"
)

// AxisField selects the coordinate field an axis operates on.
type AxisField int

const (
	FieldLongitude AxisField = iota
	FieldLatitude
)

func (f AxisField) String() string {
	switch f {
	case FieldLongitude:
		return "longitude"
	case FieldLatitude:
		return "latitude"
	}
	return "unknown"
}

func (f AxisField) value(c *Coordinate) *apd.Decimal {
	if f == FieldLatitude {
		return c.Latitude
	}
	return c.Longitude
}

// Axis pairs a coordinate field with the period of its cyclic domain.
type Axis struct {
	Field  AxisField
	Period *apd.Decimal
}

// DefaultAxes returns the axes lifted by default: longitude over a 360
// degree cycle, then latitude over a 180 degree cycle.
func DefaultAxes() []Axis {
	return []Axis{
		{Field: FieldLongitude, Period: apd.New(360, 0)},
		{Field: FieldLatitude, Period: apd.New(180, 0)},
	}
}

// LiftAxis runs the cut solver on one axis of the path. When a cut is
// found, every coordinate whose field value lies strictly below it gets
// one period added in place. Reports whether the path was modified.
func (p Path) LiftAxis(field AxisField, period *apd.Decimal) (bool, error) {
	values := make([]*apd.Decimal, len(p))
	for i, c := range p {
		values[i] = field.value(c)
	}

	o, err := Lift(values, period)
	if err != nil || o == nil {
		return false, err
	}

	for _, v := range values {
		if v.Cmp(o) < 0 {
			if _, err := decCtx.Add(v, v, period); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

// Lift adjusts all given axes, each independently of the others. Reports
// whether any of them modified the path.
func (p Path) Lift(axes []Axis) (bool, error) {
	changed := false
	for _, axis := range axes {
		c, err := p.LiftAxis(axis.Field, axis.Period)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}
