package kmlift

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseConfig(t *testing.T) {
	is := is.New(t)

	in := `
suffix: -fixed
axes:
    - field: longitude
      period: "360"
`

	cfg, err := ParseConfig(strings.NewReader(in))
	is.NoErr(err)
	is.NotNil(cfg)
	is.Equal(cfg.Suffix, "-fixed")

	axes, err := cfg.ResolveAxes()
	is.NoErr(err)
	is.Equal(len(axes), 1)
	is.Equal(axes[0].Field, FieldLongitude)
	is.Equal(axes[0].Period.Text('f'), "360")
}

func TestParseConfigDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := ParseConfig(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(cfg.Suffix, DefaultSuffix)

	axes, err := cfg.ResolveAxes()
	is.NoErr(err)
	is.Equal(len(axes), 2)
	is.Equal(axes[0].Field, FieldLongitude)
	is.Equal(axes[0].Period.Text('f'), "360")
	is.Equal(axes[1].Field, FieldLatitude)
	is.Equal(axes[1].Period.Text('f'), "180")
}

func TestParseConfigDefaultPeriod(t *testing.T) {
	is := is.New(t)

	in := `
axes:
    - field: latitude
`

	cfg, err := ParseConfig(strings.NewReader(in))
	is.NoErr(err)

	axes, err := cfg.ResolveAxes()
	is.NoErr(err)
	is.Equal(len(axes), 1)
	is.Equal(axes[0].Period.Text('f'), "180")
}

func TestParseConfigBadField(t *testing.T) {
	is := is.New(t)

	in := `
axes:
    - field: altitude
`

	_, err := ParseConfig(strings.NewReader(in))
	is.Err(err)
	is.True(strings.Contains(err.Error(), "altitude"))
}

func TestParseConfigBadPeriod(t *testing.T) {
	is := is.New(t)

	in := `
axes:
    - field: longitude
      period: "-10"
`

	_, err := ParseConfig(strings.NewReader(in))
	is.Err(err)
}
