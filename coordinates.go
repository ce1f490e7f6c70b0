package kmlift

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Coordinate is a single longitude,latitude,altitude triple from a
// coordinates element. Altitude is carried along untouched.
type Coordinate struct {
	Longitude *apd.Decimal
	Latitude  *apd.Decimal
	Altitude  *apd.Decimal
}

// ParseCoordinate parses one longitude,latitude,altitude token.
func ParseCoordinate(token string) (*Coordinate, error) {
	parts := strings.Split(token, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("Invalid coordinate %#v: expected 3 fields, got %d", token, len(parts))
	}

	values := make([]*apd.Decimal, len(parts))
	for i, part := range parts {
		d, _, err := apd.NewFromString(part)
		if err != nil {
			return nil, fmt.Errorf("Invalid coordinate %#v: %s", token, err)
		}
		values[i] = d
	}

	return &Coordinate{
		Longitude: values[0],
		Latitude:  values[1],
		Altitude:  values[2],
	}, nil
}

func (c *Coordinate) String() string {
	return c.Longitude.Text('f') + "," + c.Latitude.Text('f') + "," + c.Altitude.Text('f')
}

// Path is the ordered coordinate list of a single element. Order matters:
// adjacent coordinates define the arcs being repaired.
type Path []*Coordinate

// ParsePath parses the text content of a coordinates element: a
// whitespace-separated list of longitude,latitude,altitude tokens.
func ParsePath(text string) (Path, error) {
	tokens := strings.Fields(text)
	path := make(Path, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseCoordinate(token)
		if err != nil {
			return nil, err
		}
		path = append(path, c)
	}
	return path, nil
}

func (p Path) String() string {
	tokens := make([]string, len(p))
	for i, c := range p {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
