package visualijoper

import (
	"html"
	"strconv"
	"strings"
	"unicode/utf8"
)

// summarize returns the escaped inline text shown after a value's kind.
func (r *Renderer) summarize(v Value) string {
	switch v := v.(type) {
	case NullValue:
		return v.String()
	case StringValue:
		return r.summarizeString(v.Text)
	case IntegerValue:
		return v.String()
	case FloatValue:
		return html.EscapeString(v.String())
	case BooleanValue:
		return v.String()
	case ArrayValue:
		return countLabel(v.Len)
	case ObjectValue:
		return html.EscapeString(v.TypeName)
	case UnknownValue:
		return html.EscapeString(strings.ToValidUTF8(v.String(), "\uFFFD"))
	default:
		return ""
	}
}

// summarizeString shows at most r.limit units of s followed by the length
// of the whole string.
func (r *Renderer) summarizeString(s string) string {
	if !utf8.ValidString(s) {
		r.logger.Debug().Int("bytes", len(s)).Msg("invalid utf-8, measuring in bytes")
	}
	length, head, truncated := r.measure.cut(s, r.limit)
	var b strings.Builder
	b.WriteString(html.EscapeString(strings.ToValidUTF8(head, "\uFFFD")))
	if truncated {
		b.WriteString("&hellip;")
	}
	b.WriteString(` <span class="vj-header__size">(`)
	b.WriteString(strconv.Itoa(length))
	b.WriteString(` symbols)</span>`)
	return b.String()
}

func countLabel(n int) string {
	if n == 1 {
		return "(1 element)"
	}
	return "(" + strconv.Itoa(n) + " elements)"
}
