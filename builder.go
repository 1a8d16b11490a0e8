package carwash

import (
	"github.com/dealpredict/carwash/catalog"
	"github.com/dealpredict/carwash/clean"
	"github.com/dealpredict/carwash/extract"
	"github.com/dealpredict/carwash/match"
)

// Default thresholds for the standard pipeline.
const (
	// DefaultMinModelCount is the minimum occurrences a model needs to
	// survive the frequency filter.
	DefaultMinModelCount = 10

	// DefaultMaxMissingFields is how many key fields a row may be
	// missing before it is dropped as unrepairable.
	DefaultMaxMissingFields = 3
)

// New creates a pipeline builder for the given reference catalog.
// A nil or empty catalog disables model matching; extraction and the
// rule-based steps still run.
//
// The builder is immutable: each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	cleaner := carwash.New(cat).
//	    DriveRef(ref).
//	    MinModelCount(25).
//	    Logger(carwash.NewJSONLogger(slog.LevelInfo)).
//	    Build()
func New(cat *catalog.Catalog) Builder {
	return Builder{
		catalog:       cat,
		minModelCount: DefaultMinModelCount,
		maxMissing:    DefaultMaxMissingFields,
		cacheSize:     match.DefaultCacheSize,
	}
}

// Builder is an immutable fluent builder for creating Cleaner instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	catalog       *catalog.Catalog
	driveRef      catalog.DriveRef
	minModelCount int
	maxMissing    int
	keepCylinders bool
	cacheSize     int
	logger        *Logger
	metrics       MetricsCollector
	extraSteps    []clean.Step
}

// DriveRef sets the model to drivetrain reference used to fill blank
// drive values by exact model lookup.
func (b Builder) DriveRef(ref catalog.DriveRef) Builder {
	b.driveRef = ref
	return b
}

// MinModelCount sets the model frequency threshold.
// Default: DefaultMinModelCount.
func (b Builder) MinModelCount(n int) Builder {
	b.minModelCount = n
	return b
}

// MaxMissingFields sets how many key fields a row may be missing
// before it is dropped. Default: DefaultMaxMissingFields.
func (b Builder) MaxMissingFields(n int) Builder {
	b.maxMissing = n
	return b
}

// KeepCylinders keeps the cylinders column instead of dropping it,
// normalizing its spelling to "<N> cylinders".
func (b Builder) KeepCylinders() Builder {
	b.keepCylinders = true
	return b
}

// CacheSize sets the match memoization cache capacity.
// Default: match.DefaultCacheSize. Zero or negative is unbounded.
func (b Builder) CacheSize(n int) Builder {
	b.cacheSize = n
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// ExtraSteps appends custom steps to run after the standard pipeline.
func (b Builder) ExtraSteps(steps ...clean.Step) Builder {
	b.extraSteps = append(b.extraSteps[:len(b.extraSteps):len(b.extraSteps)], steps...)
	return b
}

// Build assembles the Cleaner.
func (b Builder) Build() *Cleaner {
	logger := b.logger
	if logger == nil {
		logger = NewLogger(nil)
	}
	var metrics MetricsCollector = b.metrics
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	manufacturers := catalog.DefaultManufacturers
	if !b.catalog.Empty() {
		manufacturers = b.catalog.Manufacturers()
	}
	extractor := extract.NewExtractor(manufacturers)

	matcher := match.NewMatcher(
		match.BuildIndex(b.catalog),
		match.WithCacheSize(b.cacheSize),
		match.WithLogger(logger.Logger),
	)

	dropCols := clean.DefaultDropColumns
	if b.keepCylinders {
		dropCols = nil
		for _, col := range clean.DefaultDropColumns {
			if col != "cylinders" {
				dropCols = append(dropCols, col)
			}
		}
	}

	steps := []clean.Step{
		extractStep(extractor),
	}
	if b.keepCylinders {
		steps = append(steps, clean.NormalizeCylinders())
	}
	steps = append(steps,
		clean.DropColumns(dropCols...),
		clean.DropSparseRows(b.maxMissing),
		clean.FillTitleStatus(),
		clean.StandardizeTransmission(),
		clean.CanonicalizeDrive(),
		clean.FillDriveFromReference(b.driveRef),
		clean.RemoveNumericalModels(),
		clean.MatchModels(matcher),
		clean.ModelFrequency(b.minModelCount),
		clean.DropBlank(clean.FieldDrive),
		clean.DropBlank(clean.FieldType),
		clean.ReplaceTypeAliases(),
		clean.FillTypeFromModel(),
		clean.ImputeDriveFromType(),
		clean.StandardizeManufacturer(),
		clean.Whitelist(clean.FieldManufacturer, catalog.ApprovedManufacturers, false),
		clean.FillPaintColor(),
		clean.Whitelist(clean.FieldPaintColor, clean.ValidPaintColors, true),
		clean.AssignCensusRegion(),
		clean.PriceRange(),
		clean.StandardizeFuel(),
		clean.Whitelist(clean.FieldFuel, clean.ValidFuels, false),
		clean.OdometerRange(),
		clean.YearRange(),
		clean.Whitelist(clean.FieldTransmission, clean.ValidTransmissions, false),
		clean.Whitelist(clean.FieldTitleStatus, clean.ValidTitleStatuses, false),
		clean.LowercaseThenWhitelist(clean.FieldType, clean.ValidTypes),
		clean.ValidateState(),
		clean.USACoordinates(),
	)
	steps = append(steps, b.extraSteps...)

	return &Cleaner{
		steps:   steps,
		matcher: matcher,
		logger:  logger,
		metrics: metrics,
	}
}
