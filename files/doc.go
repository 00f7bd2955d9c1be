// Package files provides directory enumeration and line-oriented file
// helpers.
//
// Enumeration lists the immediate children of a directory, filtered by
// a TypeSelector (everything, files only, or directories only), as
// names, full paths, or a name-to-path map. Filesystem errors from the
// underlying calls propagate wrapped, so errors.Is still matches
// fs.ErrNotExist and fs.ErrPermission.
//
// The line helpers read, write, and stream-transform plain text files
// line by line.
package files
