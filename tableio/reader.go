package tableio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tabfile/dataframe"
	apperrors "tabfile/errors"
)

// Reader reads tables from files, selecting the parser by file suffix.
type Reader struct {
	opts   ReadOptions
	logger *slog.Logger
}

// NewReader creates a reader. Zero-valued options are filled from the
// library defaults; a nil logger falls back to slog.Default().
func NewReader(opts ReadOptions, logger *slog.Logger) (*Reader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts = applyReadDefaults(opts)
	if err := validateOptions(newValidator(), opts); err != nil {
		return nil, err
	}
	return &Reader{opts: opts, logger: logger}, nil
}

// Read loads the table at path. The parser is selected by the
// lower-cased file suffix; unrecognized suffixes fail with an
// UNSUPPORTED_FORMAT error.
func (r *Reader) Read(path string) (*dataframe.Table, error) {
	r.logger.Debug("reading table",
		slog.String("path", path))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".bed", ".tsv":
		return r.readDelimited(path, r.opts.Separator)
	case ".csv":
		return r.readDelimited(path, ',')
	case ".xls", ".xlsx":
		return r.readExcel(path)
	case ".json":
		return r.readJSON(path)
	case ".html", ".htm":
		return r.readHTML(path)
	default:
		return nil, apperrors.NewUnsupportedFormatError(path)
	}
}

// ReadAll loads multiple tables sequentially, failing on the first
// error.
func (r *Reader) ReadAll(paths ...string) ([]*dataframe.Table, error) {
	tables := make([]*dataframe.Table, 0, len(paths))
	for _, path := range paths {
		t, err := r.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// readDelimited parses separator-delimited text.
func (r *Reader) readDelimited(path string, comma rune) (*dataframe.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(stripBOM(file))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to parse delimited file %s", path), err)
	}
	return r.tableFromRecords(records)
}

// tableFromRecords turns raw rows into a table, honoring the header
// option. With NoHeader set, columns are named by position.
func (r *Reader) tableFromRecords(records [][]string) (*dataframe.Table, error) {
	if len(records) == 0 {
		return dataframe.NewTable()
	}
	var headers []string
	if r.opts.NoHeader {
		width := 0
		for _, rec := range records {
			if len(rec) > width {
				width = len(rec)
			}
		}
		headers = make([]string, width)
		for j := range headers {
			headers[j] = strconv.Itoa(j)
		}
	} else {
		headers = records[0]
		records = records[1:]
	}
	return dataframe.FromRecords(headers, records)
}

// stripBOM skips a leading UTF-8 byte order mark, which the writer adds
// for Excel compatibility.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(3)
	if err == nil && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
