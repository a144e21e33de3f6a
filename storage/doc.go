// Package storage serializes record tables to parquet and uploads them to
// the configured S3 bucket.
//
// Artifacts are staged under a per-endpoint directory on the local disk,
// uploaded under the key {endpoint}/{filename}, and the staging file is
// removed on every exit path.
package storage
