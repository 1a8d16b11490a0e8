// Package catalog holds the manufacturer→model reference data used as
// ground truth for matching.
//
// A Catalog is loaded once per run (from a JSON or CSV artifact) and is
// immutable afterwards. Model names are lowercased and deduplicated at
// load time; manufacturers and models iterate in sorted order so index
// construction downstream is deterministic.
package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
)

// ErrMissingColumns is returned when a CSV reference file lacks the
// expected header columns.
var ErrMissingColumns = errors.New("catalog: reference file missing required columns")

// Catalog maps manufacturer names to their known model names.
type Catalog struct {
	models        map[string][]string
	manufacturers []string
}

// New builds a catalog from a manufacturer→models mapping. Names are
// lowercased and trimmed; models are deduplicated and sorted.
func New(byManufacturer map[string][]string) *Catalog {
	c := &Catalog{models: make(map[string][]string, len(byManufacturer))}
	for manufacturer, models := range byManufacturer {
		m := strings.ToLower(strings.TrimSpace(manufacturer))
		if m == "" {
			continue
		}
		seen := make(map[string]struct{}, len(models))
		clean := make([]string, 0, len(models))
		for _, model := range models {
			v := strings.ToLower(strings.TrimSpace(model))
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			clean = append(clean, v)
		}
		sort.Strings(clean)
		c.models[m] = append(c.models[m], clean...)
	}
	c.manufacturers = make([]string, 0, len(c.models))
	for m := range c.models {
		c.manufacturers = append(c.manufacturers, m)
	}
	sort.Strings(c.manufacturers)
	return c
}

// Manufacturers returns the manufacturer names in sorted order.
func (c *Catalog) Manufacturers() []string { return c.manufacturers }

// Models returns the known models for a manufacturer, sorted.
func (c *Catalog) Models(manufacturer string) []string {
	return c.models[strings.ToLower(strings.TrimSpace(manufacturer))]
}

// Len returns the total number of (manufacturer, model) pairs.
func (c *Catalog) Len() int {
	n := 0
	for _, models := range c.models {
		n += len(models)
	}
	return n
}

// Empty reports whether the catalog holds no models at all.
func (c *Catalog) Empty() bool { return c == nil || c.Len() == 0 }

// FromJSON decodes a {"manufacturer": ["model", ...]} document.
func FromJSON(r io.Reader) (*Catalog, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return New(raw), nil
}

// FromCSV decodes a two-column reference file with a header containing
// "manufacturer" and "model" columns, in any order.
func FromCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	manufacturerCol, modelCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "manufacturer":
			manufacturerCol = i
		case "model":
			modelCol = i
		}
	}
	if manufacturerCol < 0 || modelCol < 0 {
		return nil, ErrMissingColumns
	}

	raw := make(map[string][]string)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) <= manufacturerCol || len(rec) <= modelCol {
			continue
		}
		raw[rec[manufacturerCol]] = append(raw[rec[manufacturerCol]], rec[modelCol])
	}
	return New(raw), nil
}
