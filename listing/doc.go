// Package listing defines the in-memory tabular data model for
// used-vehicle listings.
//
// A Record is one vehicle-for-sale row. Nullable columns are pointers;
// Blank is the single place that decides whether a string value counts
// as missing (nil, empty, or the literal "nan" that sneaks in from
// upstream exports).
//
// A Table is an ordered collection of records. Filtering steps build a
// roaring bitmap of row positions to keep and apply it in one pass, so
// row identity is positional and stable within a run.
package listing
