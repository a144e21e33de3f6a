package storage

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/berlin-open-data/bvg-archiver/records"
)

// writeParquet serializes a table to a local parquet file.
func writeParquet(path string, table records.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := parquet.NewGenericWriter[records.Record](f)
	if _, err := w.Write(table); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("closing parquet writer for %s: %w", path, err)
	}
	return f.Close()
}
