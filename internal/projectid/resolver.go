// Package projectid derives stable project identifiers from document
// filenames.
package projectid

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	leadingIDUnderscore = regexp.MustCompile(`^(\d+)_`)
	leadingID           = regexp.MustCompile(`^(\d+)`)
	embeddedID          = regexp.MustCompile(`(\d{5,})`)
)

// Resolve maps a filename to a project identifier. The conventional corpus
// naming scheme is "{id}_{free text}.txt"; the chain degrades from that to
// leading digits, to any 5+ digit run, to the bare filename stem. It never
// returns an empty identifier for a non-empty filename.
func Resolve(filename string) string {
	base := filepath.Base(filename)

	if m := leadingIDUnderscore.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	if m := leadingID.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	if m := embeddedID.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
