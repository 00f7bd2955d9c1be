// Package tableio reads and writes dataframe.Table values, selecting
// the parser or serializer by file suffix.
//
// Supported read formats: delimited text with a configurable separator
// (.txt, .bed, .tsv), comma-separated (.csv), Excel workbooks with
// selectable sheet (.xls, .xlsx), JSON in line-delimited or array
// orientation (.json), and HTML table extraction (.html, .htm,
// read-only). Reading an unrecognized suffix fails with an
// UNSUPPORTED_FORMAT error.
//
// Supported write formats mirror the read side minus HTML; writing to
// an unrecognized suffix falls back to a plain-text dump of the table.
//
// Example usage:
//
//	reader, err := tableio.NewReader(tableio.ReadOptions{}, nil)
//	t, err := reader.Read("data/input.csv")
//
//	writer, err := tableio.NewWriter(tableio.WriteOptions{}, nil)
//	err = writer.Write(t, "data/output.xlsx")
package tableio
