package clean

import (
	"github.com/dealpredict/carwash/listing"
)

// Step is one cleaning pass over the table.
type Step interface {
	Name() string
	Apply(t *listing.Table) Summary
}

// Summary describes the effect of one step. Counters that do not apply
// to a step stay zero.
type Summary struct {
	Step          string
	RowsBefore    int
	RowsAfter     int
	RowsDropped   int
	ValuesFilled  int
	ValuesChanged int
}

// Attrs returns the summary as alternating key/value pairs for
// structured logging.
func (s Summary) Attrs() []any {
	return []any{
		"step", s.Step,
		"rows_before", s.RowsBefore,
		"rows_after", s.RowsAfter,
		"rows_dropped", s.RowsDropped,
		"values_filled", s.ValuesFilled,
		"values_changed", s.ValuesChanged,
	}
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	StepName string
	Fn       func(t *listing.Table) Summary
}

func (s StepFunc) Name() string { return s.StepName }

func (s StepFunc) Apply(t *listing.Table) Summary { return s.Fn(t) }

// StringField names a string column together with its accessors, so
// generic steps can operate on any of them.
type StringField struct {
	Col listing.Column
	Get func(*listing.Record) *string
	Set func(*listing.Record, *string)
}

// Accessors for the string columns the cleaning steps touch.
var (
	FieldModel = StringField{
		Col: listing.ColModel,
		Get: func(r *listing.Record) *string { return r.Model },
		Set: func(r *listing.Record, v *string) { r.Model = v },
	}
	FieldManufacturer = StringField{
		Col: listing.ColManufacturer,
		Get: func(r *listing.Record) *string { return r.Manufacturer },
		Set: func(r *listing.Record, v *string) { r.Manufacturer = v },
	}
	FieldDrive = StringField{
		Col: listing.ColDrive,
		Get: func(r *listing.Record) *string { return r.Drive },
		Set: func(r *listing.Record, v *string) { r.Drive = v },
	}
	FieldType = StringField{
		Col: listing.ColType,
		Get: func(r *listing.Record) *string { return r.Type },
		Set: func(r *listing.Record, v *string) { r.Type = v },
	}
	FieldFuel = StringField{
		Col: listing.ColFuel,
		Get: func(r *listing.Record) *string { return r.Fuel },
		Set: func(r *listing.Record, v *string) { r.Fuel = v },
	}
	FieldTransmission = StringField{
		Col: listing.ColTransmission,
		Get: func(r *listing.Record) *string { return r.Transmission },
		Set: func(r *listing.Record, v *string) { r.Transmission = v },
	}
	FieldTitleStatus = StringField{
		Col: listing.ColTitleStatus,
		Get: func(r *listing.Record) *string { return r.TitleStatus },
		Set: func(r *listing.Record, v *string) { r.TitleStatus = v },
	}
	FieldPaintColor = StringField{
		Col: listing.ColPaintColor,
		Get: func(r *listing.Record) *string { return r.PaintColor },
		Set: func(r *listing.Record, v *string) { r.PaintColor = v },
	}
	FieldState = StringField{
		Col: listing.ColState,
		Get: func(r *listing.Record) *string { return r.State },
		Set: func(r *listing.Record, v *string) { r.State = v },
	}
	FieldCensusRegion = StringField{
		Col: listing.ColCensusRegion,
		Get: func(r *listing.Record) *string { return r.CensusRegion },
		Set: func(r *listing.Record, v *string) { r.CensusRegion = v },
	}
	FieldCylinders = StringField{
		Col: listing.ColCylinders,
		Get: func(r *listing.Record) *string { return r.Cylinders },
		Set: func(r *listing.Record, v *string) { r.Cylinders = v },
	}
)
