package visualijoper

import (
	"strconv"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"
)

// Measure selects the unit string summaries are counted and truncated in.
type Measure int

const (
	MeasureRunes     Measure = iota // Unicode code points (default)
	MeasureGraphemes                // user-perceived characters
	MeasureColumns                  // terminal display columns
	MeasureBytes                    // raw bytes
)

var measureNames = map[Measure]string{
	MeasureRunes:     "runes",
	MeasureGraphemes: "graphemes",
	MeasureColumns:   "columns",
	MeasureBytes:     "bytes",
}

var measures = []Measure{MeasureRunes, MeasureGraphemes, MeasureColumns, MeasureBytes}

// String returns the measure name accepted by [ParseMeasure].
func (m Measure) String() string {
	if name, ok := measureNames[m]; ok {
		return name
	}
	return "measure(" + strconv.Itoa(int(m)) + ")"
}

// ParseMeasure parses a measure name: runes, graphemes, columns or bytes.
func ParseMeasure(s string) (Measure, error) {
	for _, m := range measures {
		if measureNames[m] == s {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedMeasure, "%q", s)
}

// cut measures s and returns its first limit units. A limit of zero or
// less never truncates. Strings that are not valid UTF-8 are measured in
// bytes whatever the measure. Valid UTF-8 is never cut inside a rune.
func (m Measure) cut(s string, limit int) (length int, head string, truncated bool) {
	if !utf8.ValidString(s) {
		m = MeasureBytes
	}
	switch m {
	case MeasureGraphemes:
		return cutGraphemes(s, limit)
	case MeasureColumns:
		length = runewidth.StringWidth(s)
		if limit <= 0 || length <= limit {
			return length, s, false
		}
		return length, runewidth.Truncate(s, limit, ""), true
	case MeasureBytes:
		length = len(s)
		if limit <= 0 || length <= limit {
			return length, s, false
		}
		end := limit
		if utf8.ValidString(s) {
			for end > 0 && !utf8.RuneStart(s[end]) {
				end--
			}
		}
		return length, s[:end], true
	default:
		return cutRunes(s, limit)
	}
}

func cutRunes(s string, limit int) (int, string, bool) {
	length := utf8.RuneCountInString(s)
	if limit <= 0 || length <= limit {
		return length, s, false
	}
	n := 0
	for i := range s {
		if n == limit {
			return length, s[:i], true
		}
		n++
	}
	return length, s, false
}

func cutGraphemes(s string, limit int) (int, string, bool) {
	var (
		length int
		end    int
	)
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		length++
		if limit <= 0 || length <= limit {
			end += len(tokens.Value())
		}
	}
	if limit <= 0 || length <= limit {
		return length, s, false
	}
	return length, s[:end], true
}
