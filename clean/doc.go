// Package clean implements the row and column cleaning steps applied
// to a listing table after extraction and matching.
//
// Each step is a Step value producing a Summary; the driver logs every
// summary so a run leaves an auditable trail of what was dropped,
// filled, or rewritten. Filtering steps build a roaring bitmap of row
// positions to keep and apply it in one pass.
//
// The original exploration of this dataset grew several divergent
// copies of the same filters; this package keeps exactly one canonical
// version of each behavior.
package clean
