package catalog

import (
	"encoding/csv"
	"io"
	"strings"
)

// DriveRef maps lowercased model names to their drivetrain code. It is
// the auxiliary reference used to fill missing drive values by exact
// model lookup.
type DriveRef map[string]string

// DriveRefFromCSV decodes a reference file with "model" and "drive"
// header columns. Values are lowercased and trimmed; the first
// occurrence of a model wins.
func DriveRefFromCSV(r io.Reader) (DriveRef, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	modelCol, driveCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "model":
			modelCol = i
		case "drive":
			driveCol = i
		}
	}
	if modelCol < 0 || driveCol < 0 {
		return nil, ErrMissingColumns
	}

	ref := make(DriveRef)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) <= modelCol || len(rec) <= driveCol {
			continue
		}
		model := strings.ToLower(strings.TrimSpace(rec[modelCol]))
		drive := strings.ToLower(strings.TrimSpace(rec[driveCol]))
		if model == "" || drive == "" {
			continue
		}
		if _, ok := ref[model]; !ok {
			ref[model] = drive
		}
	}
	return ref, nil
}

// Lookup returns the drivetrain for a model, matching on the
// lowercased, trimmed form.
func (d DriveRef) Lookup(model string) (string, bool) {
	v, ok := d[strings.ToLower(strings.TrimSpace(model))]
	return v, ok
}
