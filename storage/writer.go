package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/berlin-open-data/bvg-archiver/bvgapi"
	"github.com/berlin-open-data/bvg-archiver/internal/timeutil"
	"github.com/berlin-open-data/bvg-archiver/records"
)

// Writer stages tables as parquet files and uploads them to the bucket.
type Writer struct {
	uploader   Uploader
	bucket     string
	stagingDir string
	logger     *slog.Logger
	now        func() time.Time
}

// NewWriter creates a writer uploading to bucket, staging under stagingDir.
func NewWriter(uploader Uploader, bucket, stagingDir string, logger *slog.Logger) *Writer {
	return &Writer{
		uploader:   uploader,
		bucket:     bucket,
		stagingDir: stagingDir,
		logger:     logger,
		now:        time.Now,
	}
}

// Persist writes one table as a parquet artifact under the object key
// {endpoint}/{station}_{endpoint}_{timestamp}.parquet. An empty table
// produces no artifact. The filename timestamp has second granularity,
// which keeps names unique across runs.
func (w *Writer) Persist(ctx context.Context, table records.Table, stationName string, ep bvgapi.Endpoint) error {
	if len(table) == 0 {
		w.logger.Warn("no data to save",
			slog.String("station", stationName),
			slog.String("endpoint", ep.String()))
		return nil
	}

	dir := filepath.Join(w.stagingDir, ep.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating staging dir %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s_%s.parquet", stationName, ep, timeutil.CompactTimestamp(w.now()))
	localPath := filepath.Join(dir, filename)
	key := ep.String() + "/" + filename

	if err := writeParquet(localPath, table); err != nil {
		return err
	}
	// The staging file is removed even when the upload fails, so failed
	// runs do not accumulate on disk.
	defer func() {
		if err := os.Remove(localPath); err != nil {
			w.logger.Warn("removing staging file",
				slog.String("path", localPath),
				slog.String("error", err.Error()))
		}
	}()

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening staging file %s: %w", localPath, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := w.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(key),
		Body:   f,
	}); err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}

	w.logger.Info("uploaded artifact",
		slog.String("bucket", w.bucket),
		slog.String("key", key),
		slog.Int("records", len(table)))
	return nil
}
