package tableio

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tabfile/dataframe"
	apperrors "tabfile/errors"
)

// Writer writes tables to files, selecting the serializer by file
// suffix.
type Writer struct {
	opts   WriteOptions
	logger *slog.Logger
}

// NewWriter creates a writer. Zero-valued options are filled from the
// library defaults; a nil logger falls back to slog.Default().
func NewWriter(opts WriteOptions, logger *slog.Logger) (*Writer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts = applyWriteDefaults(opts)
	if err := validateOptions(newValidator(), opts); err != nil {
		return nil, err
	}
	return &Writer{opts: opts, logger: logger}, nil
}

// Write stores the table at path. The serializer is selected by the
// lower-cased file suffix; an unrecognized suffix falls back to a
// plain-text dump of the table. Parent directories are created.
func (w *Writer) Write(t *dataframe.Table, path string) error {
	w.logger.Info("writing table",
		slog.String("path", path),
		slog.Int("row_count", t.Rows()),
		slog.Int("column_count", t.NumColumns()))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError("failed to create directory", err)
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".bed", ".tsv":
		return w.writeDelimited(t, path, w.opts.Separator)
	case ".csv":
		return w.writeDelimited(t, path, ',')
	case ".xls", ".xlsx":
		return w.writeExcel(t, path)
	case ".json":
		return w.writeJSON(t, path)
	default:
		w.logger.Debug("unrecognized suffix, writing plain-text dump",
			slog.String("path", path))
		if err := os.WriteFile(path, []byte(t.String()), 0644); err != nil {
			return apperrors.NewStorageError(
				fmt.Sprintf("failed to write plain-text dump %s", path), err)
		}
		return nil
	}
}

// writeDelimited writes separator-delimited text, optionally prefixed
// with a UTF-8 BOM for Excel compatibility.
func (w *Writer) writeDelimited(t *dataframe.Table, path string, comma rune) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to open file %s", path), err)
	}
	defer file.Close()

	if w.opts.BOM {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	writer.Comma = comma
	defer writer.Flush()

	headers, records := t.Records()
	if !w.opts.NoHeader {
		if err := writer.Write(headers); err != nil {
			return apperrors.NewStorageError("failed to write header row", err)
		}
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(
				fmt.Sprintf("failed to write record %d", i), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush output", err)
	}
	return nil
}
