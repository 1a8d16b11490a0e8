package clean

import (
	"strings"

	"github.com/dealpredict/carwash/catalog"
	"github.com/dealpredict/carwash/listing"
)

// driveCanon maps free-form drivetrain spellings, lowercased with
// separators removed, to a canonical code.
var driveCanon = map[string]string{
	"allwheeldrive":   "4wd",
	"frontwheeldrive": "fwd",
	"rearwheeldrive":  "rwd",
	"4x4":             "4wd",
	"awd":             "4wd",
	"4d":              "4wd",
	"2d":              "rwd",
	"fwd":             "fwd",
	"rwd":             "rwd",
	"4wd":             "4wd",
}

// CanonicalizeDrive rewrites drive values to {4wd, rwd, fwd} where the
// spelling is recognizable; unrecognized values pass through for the
// whitelist to reject.
func CanonicalizeDrive() Step {
	return StepFunc{StepName: "canonicalize_drive", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "canonicalize_drive", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			v := listing.Value(r.Drive)
			if v == "" {
				continue
			}
			canon := canonicalDrive(v)
			if canon != v {
				r.Drive = listing.String(canon)
				s.ValuesChanged++
			}
		}
		return s
	}}
}

func canonicalDrive(v string) string {
	key := strings.ToLower(strings.TrimSpace(v))
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, " ", "")
	if canon, ok := driveCanon[key]; ok {
		return canon
	}
	// Word-level fallback for verbose spellings like
	// "all wheel drive (awd)".
	switch {
	case strings.Contains(key, "all") && strings.Contains(key, "wheel"):
		return "4wd"
	case strings.Contains(key, "front") && strings.Contains(key, "wheel"):
		return "fwd"
	case strings.Contains(key, "rear") && strings.Contains(key, "wheel"):
		return "rwd"
	case strings.Contains(key, "4wd") || strings.Contains(key, "4x4") || strings.Contains(key, "awd"):
		return "4wd"
	case strings.Contains(key, "fwd"):
		return "fwd"
	case strings.Contains(key, "rwd"):
		return "rwd"
	}
	return v
}

// FillDriveFromReference fills blank drive values by exact model
// lookup in the auxiliary model→drive reference. A nil reference is a
// no-op.
func FillDriveFromReference(ref catalog.DriveRef) Step {
	return StepFunc{StepName: "fill_drive_from_reference", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "fill_drive_from_reference", RowsBefore: t.Len(), RowsAfter: t.Len()}
		if len(ref) == 0 {
			return s
		}
		for i := range t.Rows {
			r := &t.Rows[i]
			if !listing.Blank(r.Drive) {
				continue
			}
			model := listing.Value(r.Model)
			if model == "" {
				continue
			}
			if drive, ok := ref.Lookup(model); ok {
				r.Drive = listing.String(drive)
				s.ValuesFilled++
			}
		}
		return s
	}}
}

// driveByType is the type→drive imputation table, derived from a
// cross-tabulation of the historical dataset.
var driveByType = map[string]string{
	"suv": "4wd", "offroad": "4wd", "pickup": "4wd", "truck": "4wd",
	"other": "4wd", "wagon": "4wd",
	"hatchback": "fwd", "minivan": "fwd", "sedan": "fwd", "van": "fwd",
	"bus": "rwd", "convertible": "rwd", "coupe": "rwd",
}

// ImputeDriveFromType fills blank drive values from the body type.
// Types are matched case-insensitively since lowercasing happens in a
// later validation step.
func ImputeDriveFromType() Step {
	return StepFunc{StepName: "impute_drive_from_type", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "impute_drive_from_type", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			if !listing.Blank(r.Drive) {
				continue
			}
			if drive, ok := driveByType[strings.ToLower(listing.Value(r.Type))]; ok {
				r.Drive = listing.String(drive)
				s.ValuesFilled++
			}
		}
		return s
	}}
}
