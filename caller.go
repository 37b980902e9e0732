package visualijoper

import (
	"html"
	"runtime"
	"strconv"
	"strings"
)

const attribution = `<a target="_blank" href="https://github.com/desfpc/Visualijoper">powered by Visualijoper</a>`

// CallerLocator reports a source location on the current call stack. skip
// counts frames the way [runtime.Caller] does: 0 is the function calling
// Caller. ok is false when the stack is not that deep.
type CallerLocator interface {
	Caller(skip int) (file string, line int, ok bool)
}

// RuntimeCaller looks locations up with [runtime.Caller].
type RuntimeCaller struct{}

// Caller implements [CallerLocator].
func (RuntimeCaller) Caller(skip int) (string, int, bool) {
	_, file, line, ok := runtime.Caller(skip + 1)
	return file, line, ok
}

// footer closes the block opened by the header. skip is the number of
// frames between render and the reported caller.
func (r *Renderer) footer(b *strings.Builder, skip int) {
	file, line, ok := r.caller.Caller(skip + 2)
	b.WriteString(`<div class="visualijoper__footer">Called from <strong>`)
	if ok && file != "" {
		b.WriteString(html.EscapeString(file))
		b.WriteString(`</strong>, line <strong>`)
		b.WriteString(strconv.Itoa(line))
		b.WriteString(`</strong>`)
	} else {
		r.logger.Debug().Int("skip", skip+2).Msg("caller location unavailable")
		b.WriteString(`unknown</strong>`)
	}
	b.WriteString(attribution)
	b.WriteString(`</div></div>`)
}
