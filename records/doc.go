// Package records flattens raw stop events into the archive row schema
// and assembles them into tables.
//
// Extraction is per item: a malformed item fails its own extraction and
// is skipped, never the batch it arrived in.
package records
