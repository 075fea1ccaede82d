package scraper

import (
	"errors"
	"regexp"
)

// The data service returns JavaScript of the form `define({data:[...]})`
// with unquoted object keys. UnwrapDefine extracts the literal and quotes
// the identifiers so the blob parses as JSON.
var (
	defineRe    = regexp.MustCompile(`(?s)define\((.*)\)\s*;?\s*$`)
	topKeyRe    = regexp.MustCompile(`([{,])\s*(\w+)\s*:`)
	nestedKeyRe = regexp.MustCompile(`([\[,])\s*(\w+)\s*:`)
)

// ErrNoDefineWrapper means the blob did not look like the expected
// JavaScript; the site format probably changed.
var ErrNoDefineWrapper = errors.New("no define(...) wrapper found in catalogue blob")

// UnwrapDefine turns the data service JavaScript into valid JSON text.
func UnwrapDefine(js string) (string, error) {
	m := defineRe.FindStringSubmatch(js)
	if m == nil {
		return "", ErrNoDefineWrapper
	}
	obj := m[1]

	// Two-stage quoting (top-level keys, then one nested level) matches
	// the depth the data service actually produces.
	obj = topKeyRe.ReplaceAllString(obj, `$1"$2":`)
	obj = nestedKeyRe.ReplaceAllString(obj, `$1"$2":`)
	return obj, nil
}
