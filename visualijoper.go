package visualijoper

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedMeasure = errors.New("unsupported measure")
	ErrCyclicAlias        = errors.New("cyclic yaml alias")
	ErrAliasExpansion     = errors.New("yaml aliases expand too far")
)

// DefaultSummaryLimit is how many units of a string a summary shows before
// it is truncated.
const DefaultSummaryLimit = 100

// Renderer renders one value as a collapsible HTML tree. A Renderer holds
// no state between calls to Render and may be rendered any number of
// times; only the shared [Assets] tracker changes.
type Renderer struct {
	value      Value
	label      string
	emitAssets bool
	assets     *Assets
	caller     CallerLocator
	fields     FieldMapper
	measure    Measure
	limit      int
	logger     zerolog.Logger
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithLabel sets the name shown above the value. An empty label shows
// nothing.
func WithLabel(label string) Option {
	return func(r *Renderer) { r.label = label }
}

// WithoutAssets suppresses the CSS/JS bundle for this render and leaves
// the tracker untouched.
func WithoutAssets() Option {
	return func(r *Renderer) { r.emitAssets = false }
}

// WithAssets sets the tracker that records whether the CSS/JS bundle has
// been written. Use one tracker per page or per request; the default is
// [DefaultAssets].
func WithAssets(a *Assets) Option {
	return func(r *Renderer) {
		if a != nil {
			r.assets = a
		}
	}
}

// WithCaller replaces the call-site lookup used for the footer.
func WithCaller(c CallerLocator) Option {
	return func(r *Renderer) {
		if c != nil {
			r.caller = c
		}
	}
}

// WithFieldMapper sets how objects are turned into rows. The default is
// [ExportedFields].
func WithFieldMapper(m FieldMapper) Option {
	return func(r *Renderer) {
		if m != nil {
			r.fields = m
		}
	}
}

// WithMeasure sets the unit string summaries are counted in.
func WithMeasure(m Measure) Option {
	return func(r *Renderer) { r.measure = m }
}

// WithSummaryLimit sets how many units a string summary shows before it is
// truncated. Zero or less disables truncation.
func WithSummaryLimit(n int) Option {
	return func(r *Renderer) { r.limit = n }
}

// WithLogger sets the logger for debug events. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New classifies v and returns a Renderer for it.
func New(v any, opts ...Option) *Renderer {
	r := &Renderer{
		emitAssets: true,
		assets:     DefaultAssets(),
		caller:     RuntimeCaller{},
		fields:     ExportedFields,
		measure:    MeasureRunes,
		limit:      DefaultSummaryLimit,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.value = Classify(v)
	return r
}

// Value returns the classified value.
func (r *Renderer) Value() Value { return r.value }

// Render returns the HTML fragment for the value. The footer names the
// caller of Render.
func (r *Renderer) Render() string {
	return r.render(1)
}

// WriteTo writes the rendered fragment to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.render(1))
	if err != nil {
		return int64(n), errors.Wrap(err, "write rendered value")
	}
	return int64(n), nil
}

// Dump renders v and writes the fragment to w.
func Dump(w io.Writer, v any, opts ...Option) error {
	if _, err := io.WriteString(w, New(v, opts...).render(1)); err != nil {
		return errors.Wrap(err, "write rendered value")
	}
	return nil
}

// Print renders v to standard output.
func Print(v any, opts ...Option) error {
	if _, err := io.WriteString(os.Stdout, New(v, opts...).render(1)); err != nil {
		return errors.Wrap(err, "write rendered value")
	}
	return nil
}

// render assembles assets, header, body and footer. skip is the number of
// frames between render and the caller reported in the footer.
func (r *Renderer) render(skip int) string {
	var b strings.Builder
	if r.emitAssets && r.assets.claim() {
		r.logger.Debug().Msg("emitting css and js assets")
		writeAssets(&b)
	}
	w := newWalker(r)
	b.WriteString(`<div class="visualijoper">`)
	w.header(&b, r.label, r.value)
	if r.value.Kind().Expandable() {
		w.body(&b, r.value, 0)
	}
	r.footer(&b, skip)
	return b.String()
}
