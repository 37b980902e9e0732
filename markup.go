package visualijoper

import (
	"html"
	"strconv"
	"strings"
)

const (
	separatorExpand = "&hellip;"
	separatorPlain  = "=&gt;"
	cycleMarker     = "*cyclic reference*"
)

// row is one rendered child of a container.
type row struct {
	key     string
	kind    Kind
	summary string
	body    string
	level   int
	cyclic  bool
}

// walker renders one value tree. It tracks the containers on the current
// path so a container that holds itself becomes a marker row.
type walker struct {
	r    *Renderer
	path map[identity]struct{}
}

func newWalker(r *Renderer) *walker {
	return &walker{r: r, path: make(map[identity]struct{})}
}

func (w *walker) header(b *strings.Builder, label string, v Value) {
	b.WriteString(`<div class="visualijoper__header vj-header`)
	if v.Kind().Expandable() {
		b.WriteString(` vj-header_clickable`)
	}
	b.WriteString(`">`)
	if label != "" {
		b.WriteString(`<p class="vj-header__name">`)
		b.WriteString(html.EscapeString(label))
		b.WriteString(`:</p>`)
	}
	b.WriteString(`<span class="vj-header__type">`)
	b.WriteString(v.Kind().String())
	b.WriteString(`</span>: <span class="vj-header__value">`)
	b.WriteString(w.r.summarize(v))
	b.WriteString(`</span></div>`)
}

// body writes the detail block of an expandable value. Containers without
// entries write nothing.
func (w *walker) body(b *strings.Builder, v Value, level int) {
	switch v := v.(type) {
	case StringValue:
		b.WriteString(`<div class="vj-body"><div class="vj-body__content vj-body__content_string"><pre>`)
		b.WriteString(html.EscapeString(strings.ToValidUTF8(v.Text, "\uFFFD")))
		b.WriteString(`</pre></div></div>`)
	case ArrayValue:
		w.container(b, "array", v.id, w.r.arrayEntries(v), level)
	case ObjectValue:
		w.container(b, "object", v.id, w.r.objectEntries(v), level)
	}
}

func (w *walker) container(b *strings.Builder, class string, id identity, entries []entry, level int) {
	rows := w.walk(id, entries, level)
	if len(rows) == 0 {
		return
	}
	b.WriteString(`<div class="vj-body"><div class="vj-body__content vj-body__content_`)
	b.WriteString(class)
	b.WriteString(`">`)
	for _, rw := range rows {
		rw.write(b)
	}
	b.WriteString(`</div></div>`)
}

// walk turns the entries of the container id into rows one level deeper
// than level. Expandable children get their bodies rendered recursively.
func (w *walker) walk(id identity, entries []entry, level int) []row {
	if len(entries) == 0 {
		return nil
	}
	level = nextLevel(level)
	if id.valid() {
		w.path[id] = struct{}{}
		defer delete(w.path, id)
	}
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		v := classify(e.value)
		rw := row{key: e.key, kind: v.Kind(), level: level}
		if cid := identityOf(v); cid.valid() {
			if _, onPath := w.path[cid]; onPath {
				w.r.logger.Debug().
					Str("key", e.key).
					Stringer("kind", rw.kind).
					Msg("cyclic reference replaced by marker")
				rw.cyclic = true
				rows = append(rows, rw)
				continue
			}
		}
		rw.summary = w.r.summarize(v)
		if rw.kind.Expandable() {
			var body strings.Builder
			w.body(&body, v, level)
			rw.body = body.String()
		}
		rows = append(rows, rw)
	}
	return rows
}

// nextLevel rotates through the five row level styles.
func nextLevel(level int) int {
	level++
	if level >= 6 {
		level = 1
	}
	return level
}

func (rw row) write(b *strings.Builder) {
	expand := rw.kind.Expandable() && !rw.cyclic
	b.WriteString(`<div class="visualijoper__row vj-row visualijoper__row_level`)
	b.WriteString(strconv.Itoa(rw.level))
	if expand {
		b.WriteString(` visualijoper__row_clickable`)
	}
	b.WriteString(`"><p class="vj-row__header"><span class="vj-row__key">`)
	b.WriteString(html.EscapeString(strings.ToValidUTF8(rw.key, "\uFFFD")))
	b.WriteString(`</span> <span class="vj-row__type">`)
	b.WriteString(rw.kind.String())
	b.WriteString(`</span> `)
	if expand {
		b.WriteString(separatorExpand)
	} else {
		b.WriteString(separatorPlain)
	}
	if rw.cyclic {
		b.WriteString(` <span class="vj-row__value vj-row__value_cycle">` + cycleMarker + `</span></p></div>`)
		return
	}
	b.WriteString(` <span class="vj-row__value">`)
	b.WriteString(rw.summary)
	b.WriteString(`</span></p>`)
	b.WriteString(rw.body)
	b.WriteString(`</div>`)
}
