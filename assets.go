package visualijoper

import (
	_ "embed"
	"strings"
	"sync/atomic"
)

var (
	//go:embed assets/visualijoper.css
	css string

	//go:embed assets/visualijoper.js
	js string
)

// CSS returns the stylesheet the rendered markup expects.
func CSS() string { return css }

// JS returns the script that toggles the "active" class on a "vj-body"
// when its header or row is clicked.
func JS() string { return js }

// Assets records whether the CSS/JS bundle has been written to a page.
// It is safe for concurrent use: exactly one render claims the bundle.
type Assets struct {
	emitted atomic.Bool
}

var defaultAssets = NewAssets()

// NewAssets returns a tracker that has not emitted yet. Create one per
// page, for example per HTTP request.
func NewAssets() *Assets { return &Assets{} }

// DefaultAssets returns the process-wide tracker used when no tracker is
// set with [WithAssets]. It is never reset.
func DefaultAssets() *Assets { return defaultAssets }

// Emitted reports whether the bundle has been written.
func (a *Assets) Emitted() bool { return a.emitted.Load() }

func (a *Assets) claim() bool {
	return a.emitted.CompareAndSwap(false, true)
}

func writeAssets(b *strings.Builder) {
	b.WriteString("<style>")
	b.WriteString(css)
	b.WriteString("</style><script>")
	b.WriteString(js)
	b.WriteString("</script>")
}
