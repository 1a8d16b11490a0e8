package carwash

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dealpredict/carwash/catalog"
	"github.com/dealpredict/carwash/clean"
	"github.com/dealpredict/carwash/extract"
	"github.com/dealpredict/carwash/listing"
	"github.com/dealpredict/carwash/match"
	"github.com/dealpredict/carwash/tablestore"
)

// Cleaner runs the listing cleaning pipeline. Build one with the
// fluent builder in builder.go; a Cleaner is immutable and safe for
// concurrent runs over distinct tables.
type Cleaner struct {
	steps   []clean.Step
	matcher *match.Matcher
	logger  *Logger
	metrics MetricsCollector
}

// Report is the outcome of one pipeline run.
type Report struct {
	RowsIn    int
	RowsOut   int
	Summaries []clean.Summary
	Duration  time.Duration
}

// Steps returns the names of the configured steps in run order.
func (c *Cleaner) Steps() []string {
	names := make([]string, len(c.steps))
	for i, s := range c.steps {
		names[i] = s.Name()
	}
	return names
}

// Run cleans the table in place and reports per-step effects. The
// context is checked between steps so long runs can be cancelled.
func (c *Cleaner) Run(ctx context.Context, t *listing.Table) (*Report, error) {
	start := time.Now()
	rowsIn := t.Len()

	if rowsIn == 0 {
		c.logger.LogRun(ctx, 0, 0, len(c.steps), ErrEmptyTable)
		return nil, ErrEmptyTable
	}

	report := &Report{
		RowsIn:    rowsIn,
		Summaries: make([]clean.Summary, 0, len(c.steps)),
	}
	for _, step := range c.steps {
		if err := ctx.Err(); err != nil {
			wrapped := &ErrStep{Step: step.Name(), cause: err}
			c.logger.LogRun(ctx, rowsIn, t.Len(), len(c.steps), wrapped)
			return nil, wrapped
		}

		stepStart := time.Now()
		summary := step.Apply(t)
		c.metrics.RecordStep(summary.Step, summary.RowsDropped, time.Since(stepStart))
		c.logger.LogStep(ctx, summary)
		report.Summaries = append(report.Summaries, summary)
	}

	if c.matcher != nil {
		hits, misses := c.matcher.CacheStats()
		c.metrics.RecordMatch(hits, misses)
	}

	report.RowsOut = t.Len()
	report.Duration = time.Since(start)
	c.metrics.RecordRun(report.RowsIn, report.RowsOut, report.Duration, nil)
	c.logger.LogRun(ctx, report.RowsIn, report.RowsOut, len(c.steps), nil)
	return report, nil
}

// Clean reads a table from the store, runs the pipeline and writes the
// result. Format and compression follow the object names, so
// source "raw/vehicles.csv" and dest "clean/vehicles.csv.gz" reads
// plain CSV and writes gzip-compressed CSV.
func (c *Cleaner) Clean(ctx context.Context, store *tablestore.Store, source, dest string) (*Report, error) {
	readStart := time.Now()
	t, err := store.ReadTable(ctx, source)
	if err != nil {
		c.metrics.RecordRead(0, time.Since(readStart), err)
		c.logger.LogRead(ctx, source, 0, err)
		return nil, err
	}
	c.metrics.RecordRead(t.Len(), time.Since(readStart), nil)
	c.logger.LogRead(ctx, source, t.Len(), nil)

	report, err := c.Run(ctx, t)
	if err != nil {
		return nil, err
	}

	writeStart := time.Now()
	if err := store.WriteTable(ctx, dest, t); err != nil {
		c.metrics.RecordWrite(t.Len(), time.Since(writeStart), err)
		c.logger.LogWrite(ctx, dest, t.Len(), err)
		return nil, err
	}
	c.metrics.RecordWrite(t.Len(), time.Since(writeStart), nil)
	c.logger.LogWrite(ctx, dest, t.Len(), nil)
	return report, nil
}

// LoadCatalog reads a reference catalog object through the table
// store's ObjectStore. The extension picks the decoder: .json or
// .csv. Failures wrap ErrCatalogLoad so callers can degrade to a
// matcher-less pipeline instead of aborting.
func LoadCatalog(ctx context.Context, store *tablestore.Store, object string) (*catalog.Catalog, error) {
	data, err := store.Objects().Get(ctx, object)
	if err != nil {
		return nil, &ErrCatalogLoad{Object: object, cause: err}
	}

	var cat *catalog.Catalog
	switch {
	case strings.HasSuffix(object, ".json"):
		cat, err = catalog.FromJSON(bytes.NewReader(data))
	case strings.HasSuffix(object, ".csv"):
		cat, err = catalog.FromCSV(bytes.NewReader(data))
	default:
		err = fmt.Errorf("unsupported catalog extension in %q", object)
	}
	if err != nil {
		return nil, &ErrCatalogLoad{Object: object, cause: err}
	}
	return cat, nil
}

// LoadDriveRef reads a model to drivetrain reference CSV through the
// table store's ObjectStore.
func LoadDriveRef(ctx context.Context, store *tablestore.Store, object string) (catalog.DriveRef, error) {
	data, err := store.Objects().Get(ctx, object)
	if err != nil {
		return nil, &ErrCatalogLoad{Object: object, cause: err}
	}
	ref, err := catalog.DriveRefFromCSV(bytes.NewReader(data))
	if err != nil {
		return nil, &ErrCatalogLoad{Object: object, cause: err}
	}
	return ref, nil
}

// extractStep adapts the field extractor to a pipeline step.
func extractStep(e *extract.Extractor) clean.Step {
	return clean.StepFunc{StepName: "extract_fields", Fn: func(t *listing.Table) clean.Summary {
		s := clean.Summary{Step: "extract_fields", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			before := countBlank(r)
			e.Apply(r)
			s.ValuesFilled += before - countBlank(r)
		}
		return s
	}}
}

func countBlank(r *listing.Record) int {
	n := 0
	for _, v := range []*string{r.Manufacturer, r.Type, r.Drive, r.Cylinders} {
		if listing.Blank(v) {
			n++
		}
	}
	if r.Year == nil {
		n++
	}
	return n
}
