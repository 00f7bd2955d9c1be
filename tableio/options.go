package tableio

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"tabfile/internal/config"
	apperrors "tabfile/errors"
)

// JSON orientations accepted by ReadOptions.Orient and
// WriteOptions.Orient.
const (
	// OrientLines reads/writes one JSON object per line.
	OrientLines = "lines"
	// OrientRecords reads/writes a top-level JSON array of objects.
	OrientRecords = "records"
)

// ReadOptions configures suffix-dispatched reading.
type ReadOptions struct {
	// Separator is the field separator for .txt/.bed/.tsv files.
	// Zero means the configured default (tab).
	Separator rune `validate:"omitempty,separator"`

	// NoHeader treats the first row as data; columns are named by
	// position.
	NoHeader bool

	// Sheet selects an Excel sheet by name. When set it wins over
	// SheetIndex.
	Sheet string

	// SheetIndex selects an Excel sheet by position, default 0.
	SheetIndex int `validate:"gte=0"`

	// Orient selects the JSON layout, default lines.
	Orient string `validate:"omitempty,oneof=records lines"`
}

// WriteOptions configures suffix-dispatched writing.
type WriteOptions struct {
	// Separator is the field separator for .txt/.bed/.tsv files.
	// Zero means the configured default (tab).
	Separator rune `validate:"omitempty,separator"`

	// NoHeader omits the header row on delimited and Excel output.
	NoHeader bool

	// SheetName names the sheet of written workbooks. Empty means the
	// configured default.
	SheetName string

	// Orient selects the JSON layout, default lines.
	Orient string `validate:"omitempty,oneof=records lines"`

	// BOM prefixes delimited output with a UTF-8 BOM so Excel opens it
	// as UTF-8.
	BOM bool
}

// newValidator builds the option validator with the separator check
// registered.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("separator", isValidSeparator)
	return v
}

// isValidSeparator rejects separators encoding/csv cannot use.
func isValidSeparator(fl validator.FieldLevel) bool {
	switch rune(fl.Field().Int()) {
	case '\n', '\r', '"', 0xFFFD:
		return false
	}
	return true
}

// applyReadDefaults fills zero-valued fields from the resolved library
// defaults.
func applyReadDefaults(opts ReadOptions) ReadOptions {
	defaults := config.Defaults()
	if opts.Separator == 0 {
		opts.Separator = defaults.SeparatorRune()
	}
	if opts.Orient == "" {
		opts.Orient = defaults.Orient
	}
	return opts
}

// applyWriteDefaults fills zero-valued fields from the resolved library
// defaults.
func applyWriteDefaults(opts WriteOptions) WriteOptions {
	defaults := config.Defaults()
	if opts.Separator == 0 {
		opts.Separator = defaults.SeparatorRune()
	}
	if opts.SheetName == "" {
		opts.SheetName = defaults.SheetName
	}
	if opts.Orient == "" {
		opts.Orient = defaults.Orient
	}
	return opts
}

// validateOptions runs the struct validator and converts failures into
// the library's validation error type.
func validateOptions(v *validator.Validate, opts interface{}) error {
	if err := v.Struct(opts); err != nil {
		return apperrors.New(apperrors.ErrTypeValidation,
			fmt.Sprintf("invalid options: %v", err), err)
	}
	return nil
}
