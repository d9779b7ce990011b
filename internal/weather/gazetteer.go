package weather

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

//go:embed cities.toml
var defaultCitiesTOML string

// Place is a resolved query.
type Place struct {
	Name string
	At   Coordinates
}

type cityEntry struct {
	Name      string  `toml:"name"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

type cityFile struct {
	City []cityEntry `toml:"city"`
}

// Gazetteer maps city names to coordinates.
type Gazetteer struct {
	places []Place
	index  map[string]int // lower-case name -> places index
}

// LoadGazetteer decodes the built-in table and, when path is set, merges the
// user file over it. Entries with the same name replace built-in ones.
func LoadGazetteer(path string) (*Gazetteer, error) {
	var base cityFile
	if _, err := toml.Decode(defaultCitiesTOML, &base); err != nil {
		return nil, fmt.Errorf("decode built-in cities: %w", err)
	}
	g := NewGazetteer(nil)
	g.add(base.City)
	if path == "" {
		return g, nil
	}
	var user cityFile
	if _, err := toml.DecodeFile(path, &user); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	g.add(user.City)
	return g, nil
}

// NewGazetteer builds a table from places, later duplicates winning.
func NewGazetteer(places []Place) *Gazetteer {
	g := &Gazetteer{index: map[string]int{}}
	for _, p := range places {
		g.put(p)
	}
	return g
}

func (g *Gazetteer) add(entries []cityEntry) {
	for _, e := range entries {
		g.put(Place{Name: strings.TrimSpace(e.Name), At: Coordinates{Latitude: e.Latitude, Longitude: e.Longitude}})
	}
}

func (g *Gazetteer) put(p Place) {
	key := strings.ToLower(p.Name)
	if key == "" {
		return
	}
	if i, ok := g.index[key]; ok {
		g.places[i] = p
		return
	}
	g.index[key] = len(g.places)
	g.places = append(g.places, p)
}

// Names lists places in table order.
func (g *Gazetteer) Names() []string {
	out := make([]string, 0, len(g.places))
	for _, p := range g.places {
		out = append(out, p.Name)
	}
	return out
}

// Resolve turns a query into a place. "lat,lon" is taken literally; names
// match case-insensitively, then by nearest edit distance.
func (g *Gazetteer) Resolve(query string) (Place, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Place{}, ErrUnknownCity
	}
	if at, ok := ParseCoordinates(q); ok {
		return Place{Name: at.String(), At: at}, nil
	}
	lower := strings.ToLower(q)
	if i, ok := g.index[lower]; ok {
		return g.places[i], nil
	}

	best, bestDist := -1, 0
	for i, p := range g.places {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(p.Name))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > utf8.RuneCountInString(lower)/3+1 {
		return Place{}, fmt.Errorf("%w: %q", ErrUnknownCity, q)
	}
	return g.places[best], nil
}
