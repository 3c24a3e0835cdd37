// Package brand holds the static brand presets: the default bend height for
// each brand and the cutlery partition table cut from its sheets.
package brand

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Partition struct {
	Length float64 `json:"length" yaml:"length"`
	Qty    int     `json:"qty" yaml:"qty"`
}

type SizeEntry struct {
	Size       string      `json:"size" yaml:"size"`
	Partitions []Partition `json:"partitions" yaml:"partitions"`
}

type Brand struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	BendHeightMM float64     `json:"bend_height_mm" yaml:"bend_height_mm"`
	Partitions   []SizeEntry `json:"partitions,omitempty" yaml:"partitions"`
}

type catalog struct {
	Brands []Brand `yaml:"brands"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// registry is built once at init and only read afterwards.
var registry = mustParse(catalogYAML)

type index struct {
	order []Brand
	byID  map[string]Brand
}

func mustParse(data []byte) index {
	idx, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("brand: embedded catalog: %v", err))
	}
	return idx
}

func parse(data []byte) (index, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return index{}, fmt.Errorf("decode catalog: %w", err)
	}
	idx := index{byID: make(map[string]Brand, len(c.Brands))}
	for _, b := range c.Brands {
		id := Normalize(b.ID)
		if id == "" {
			return index{}, fmt.Errorf("brand %q has no id", b.Name)
		}
		if _, dup := idx.byID[id]; dup {
			return index{}, fmt.Errorf("duplicate brand %q", id)
		}
		b.ID = id
		idx.byID[id] = b
		idx.order = append(idx.order, b)
	}
	return idx, nil
}

// Normalize turns a user supplied brand identifier into a catalog key.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Lookup returns a copy of the brand registered under id.
func Lookup(id string) (Brand, bool) {
	b, ok := registry.byID[Normalize(id)]
	if !ok {
		return Brand{}, false
	}
	b.Partitions = clonePartitions(b.Partitions)
	return b, true
}

// DefaultBendHeight reports the preset bend height in millimetres. The second
// result is false for unknown brands; callers keep their current value then.
func DefaultBendHeight(id string) (float64, bool) {
	b, ok := registry.byID[Normalize(id)]
	if !ok {
		return 0, false
	}
	return b.BendHeightMM, true
}

// Partitions returns the cutlery partition table for id. Unknown brands and
// brands without partitions yield an empty, non-nil slice.
func Partitions(id string) []SizeEntry {
	b, ok := registry.byID[Normalize(id)]
	if !ok {
		return []SizeEntry{}
	}
	return clonePartitions(b.Partitions)
}

// Brands lists the catalog in display order, without partition tables.
func Brands() []Brand {
	out := make([]Brand, 0, len(registry.order))
	for _, b := range registry.order {
		b.Partitions = nil
		out = append(out, b)
	}
	return out
}

func clonePartitions(in []SizeEntry) []SizeEntry {
	out := make([]SizeEntry, 0, len(in))
	for _, e := range in {
		out = append(out, SizeEntry{
			Size:       e.Size,
			Partitions: append([]Partition(nil), e.Partitions...),
		})
	}
	return out
}
