// Package carwash cleans used-vehicle listing exports into analysis-ready
// tables.
//
// Raw marketplace exports are noisy: model fields carry trim levels, sales
// blurbs and whole sentences, manufacturers are misspelled or missing, and
// numeric columns mix sentinel values with real data. Carwash extracts
// structured attributes from free text, canonicalizes models and
// manufacturers against a reference catalog, and filters rows through a
// configurable pipeline of validation steps.
//
// # Quick Start
//
//	cat, _ := catalog.FromCSV(catalogFile)
//	cleaner := carwash.New(cat).Build()
//
//	report, err := cleaner.Run(ctx, table)
//
// Tables are read and written through the tablestore package, which
// supports local files, S3 and MinIO with CSV or JSON encodings and
// optional compression:
//
//	store := tablestore.New(tablestore.NewLocalStore("./data"))
//	report, err := cleaner.Clean(ctx, store, "raw/vehicles.csv", "clean/vehicles.csv.gz")
//
// # Pipeline
//
// The standard pipeline extracts year, manufacturer, drivetrain, body
// type and cylinder count from the model and description fields, then
// runs validation and imputation steps: vocabulary whitelists, numeric
// range filters, modal fills for paint color and body type, census
// division assignment, and model canonicalization through a memoized
// fuzzy matcher. Each step reports row and value counts for structured
// logging.
package carwash
