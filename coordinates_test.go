package kmlift

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseCoordinate(t *testing.T) {
	is := is.New(t)

	c, err := ParseCoordinate("-122.3493,47.6205,30.5")
	is.NoErr(err)
	is.Equal(c.Longitude.Text('f'), "-122.3493")
	is.Equal(c.Latitude.Text('f'), "47.6205")
	is.Equal(c.Altitude.Text('f'), "30.5")
}

func TestParseCoordinateFieldCount(t *testing.T) {
	is := is.New(t)

	_, err := ParseCoordinate("1,2")
	is.Err(err)
	is.True(strings.Contains(err.Error(), "1,2"))

	_, err = ParseCoordinate("1,2,3,4")
	is.Err(err)
}

func TestParseCoordinateBadNumber(t *testing.T) {
	is := is.New(t)

	_, err := ParseCoordinate("1,north,3")
	is.Err(err)
	is.True(strings.Contains(err.Error(), "1,north,3"))
}

func TestParsePath(t *testing.T) {
	is := is.New(t)

	p, err := ParsePath("170,10,0 -170,12,5")
	is.NoErr(err)
	is.Equal(len(p), 2)
	is.Equal(p[0].Longitude.Text('f'), "170")
	is.Equal(p[1].Altitude.Text('f'), "5")
}

func TestParsePathWhitespace(t *testing.T) {
	is := is.New(t)

	// Any run of whitespace separates tokens, including newlines as they
	// appear in indented KML documents.
	p, err := ParsePath("\n\t\t1,2,3\n\t\t4,5,6  7,8,9\n")
	is.NoErr(err)
	is.Equal(len(p), 3)
}

func TestParsePathEmpty(t *testing.T) {
	is := is.New(t)

	p, err := ParsePath("   \n  ")
	is.NoErr(err)
	is.Equal(len(p), 0)
}

func TestPathRoundTrip(t *testing.T) {
	is := is.New(t)

	// Unchanged values serialize back to their original digits, trailing
	// zeros included.
	in := "-122.3493,47.6205,0.00 -122.3400,47.6100,12.50"
	p, err := ParsePath(in)
	is.NoErr(err)
	is.Equal(p.String(), in)
}
