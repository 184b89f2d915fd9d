package catalog

import (
	"FolioScale/gradient"
	"FolioScale/misc"
	"encoding/json"
	"errors"
	"fmt"
)

// Entry is one named color from the folio catalog.
type Entry struct {
	Name string
	Lab  gradient.LabColor
}

// Match is the catalog entry closest to a target color, with the CIEDE2000
// distance between the two.
type Match struct {
	Name   string
	Lab    gradient.LabColor
	DeltaE float64
}

func (m *Match) String() string {
	return fmt.Sprintf("{Match Name: %s (dE2000: %.2f)}", m.Name, m.DeltaE)
}

// Catalog is a list of named reference colors that gradient samples can be
// matched against.
type Catalog struct {
	entries []Entry
}

func New(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Load reads a catalog from a JSON file holding a list of entries.
func Load(fileName string) (*Catalog, error) {
	contents, err := misc.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("unable to parse catalog %s - %s", fileName, err)
	}
	return New(entries), nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Closest scans the catalog for the entry with the smallest CIEDE2000
// distance to target. Ties resolve to the earliest entry, so results are
// stable across runs.
func (c *Catalog) Closest(target gradient.LabColor) (Match, error) {
	if len(c.entries) == 0 {
		return Match{}, errors.New("catalog is empty")
	}

	best := c.entries[0]
	bestDistance := gradient.DeltaECIEDE2000(target, best.Lab)
	for _, entry := range c.entries[1:] {
		distance := gradient.DeltaECIEDE2000(target, entry.Lab)
		if distance < bestDistance {
			best = entry
			bestDistance = distance
		}
	}
	return Match{Name: best.Name, Lab: best.Lab, DeltaE: bestDistance}, nil
}
