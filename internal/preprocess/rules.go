package preprocess

import (
	"bytes"
	"strings"

	"github.com/harrison/ppcheck/internal/models"
)

// percentStyleExt is the one file type that uses '%' directives
const percentStyleExt = ".css"

// fileTypes is the closed allow-list of preprocessable suffixes.
// No entry may be a suffix of another entry.
var fileTypes = [...]string{
	".css",
	".dtd",
	".html",
	".js",
	".jsm",
	".xhtml",
	".xml",
	".xul",
	".manifest",
	".properties",
	".rdf",
}

// directives is the closed, ordered directive keyword set
var directives = [...]string{
	"define",
	"if",
	"ifdef",
	"ifndef",
	"elif",
	"elifdef",
	"endif",
	"error",
	"expand",
	"filter",
	"include",
	"literal",
	"undef",
	"unfilter",
}

// directivePrefix is a marker+keyword line prefix
type directivePrefix struct {
	text    string // e.g. "#ifdef"
	raw     []byte // text as bytes, for matching
	keyword string // e.g. "ifdef"
}

// stylePrefixes holds the disallowed line prefixes per marker style, built once
var stylePrefixes = map[models.MarkerStyle][]directivePrefix{
	models.HashStyle:    buildPrefixes(models.HashStyle),
	models.PercentStyle: buildPrefixes(models.PercentStyle),
}

func buildPrefixes(style models.MarkerStyle) []directivePrefix {
	marker := string(style.Marker())
	prefixes := make([]directivePrefix, len(directives))
	for i, keyword := range directives {
		prefixes[i] = directivePrefix{
			text:    marker + keyword,
			raw:     []byte(marker + keyword),
			keyword: keyword,
		}
	}
	return prefixes
}

// FileTypes returns the candidate file suffixes in allow-list order
func FileTypes() []string {
	out := make([]string, len(fileTypes))
	copy(out, fileTypes[:])
	return out
}

// Directives returns the directive keywords in their defined order
func Directives() []string {
	out := make([]string, len(directives))
	copy(out, directives[:])
	return out
}

// Classify reports whether name has a preprocessable suffix and, if so,
// which suffix matched and which marker style applies.
func Classify(name string) (ext string, style models.MarkerStyle, ok bool) {
	for _, suffix := range fileTypes {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		if suffix == percentStyleExt {
			return suffix, models.PercentStyle, true
		}
		return suffix, models.HashStyle, true
	}
	return "", models.HashStyle, false
}

// DisallowedPrefixes returns the marker+keyword prefixes for a style, in keyword order
func DisallowedPrefixes(style models.MarkerStyle) []string {
	prefixes := stylePrefixes[style]
	out := make([]string, len(prefixes))
	for i, p := range prefixes {
		out[i] = p.text
	}
	return out
}

// matchDirective tests whether line begins with one of the prefixes.
// When several keywords match ("#if" and "#ifdef"), the longest wins so the
// reported keyword is the one actually written.
func matchDirective(line []byte, prefixes []directivePrefix) (string, bool) {
	matched := ""
	for _, p := range prefixes {
		if len(p.keyword) > len(matched) && bytes.HasPrefix(line, p.raw) {
			matched = p.keyword
		}
	}
	return matched, matched != ""
}
