package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/visualijoper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderFile(t *testing.T) {
	path := writeFile(t, "order.yaml", "name: vj\nitems: [1, 2]\n")

	out, err := execute(t, "", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, `<p class="vj-header__name">`+path+`:</p>`)
	assert.Contains(t, out, `<span class="vj-header__value">(2 elements)</span>`)
	assert.Contains(t, out, fmt.Sprintf("Called from <strong>%s</strong>, line <strong>1</strong>", path))

	name := strings.Index(out, `<span class="vj-row__key">name</span>`)
	items := strings.Index(out, `<span class="vj-row__key">items</span>`)
	require.NotEqual(t, -1, name)
	require.NotEqual(t, -1, items)
	assert.Less(t, name, items)
}

func TestRenderStdinDocuments(t *testing.T) {
	out, err := execute(t, "a: 1\n---\nb: 2\n", "--page=false", "--no-assets")
	require.NoError(t, err)

	assert.NotContains(t, out, "<!DOCTYPE html>")
	assert.NotContains(t, out, "<style>")
	assert.Contains(t, out, `<p class="vj-header__name">stdin #1:</p>`)
	assert.Contains(t, out, `<p class="vj-header__name">stdin #2:</p>`)
	assert.Contains(t, out, "Called from <strong>stdin</strong>, line <strong>1</strong>")
	assert.Contains(t, out, "Called from <strong>stdin</strong>, line <strong>3</strong>")
}

func TestAssetsOncePerInvocation(t *testing.T) {
	first := writeFile(t, "first.json", `{"a": 1}`)
	second := writeFile(t, "second.json", `{"b": 2}`)

	out, err := execute(t, "", first, second)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "<style>"))
	assert.Equal(t, 1, strings.Count(out, "<script>"))
	assert.Equal(t, 2, strings.Count(out, `<div class="visualijoper">`))
}

func TestLabelFlag(t *testing.T) {
	out, err := execute(t, "x: <b>\n", "--label", "payload <1>", "--page=false")
	require.NoError(t, err)
	assert.Contains(t, out, `<p class="vj-header__name">payload &lt;1&gt;:</p>`)
	assert.Contains(t, out, "&lt;b&gt; <span")
}

func TestLimitAndMeasureFlags(t *testing.T) {
	out, err := execute(t, "s: héllo\n", "--limit", "2", "--measure", "bytes", "--page=false", "--no-assets")
	require.NoError(t, err)
	assert.Contains(t, out, `h&hellip; <span class="vj-header__size">(6 symbols)</span>`)
}

func TestUnsupportedMeasure(t *testing.T) {
	_, err := execute(t, "a: 1\n", "--measure", "words")
	require.Error(t, err)
	assert.ErrorIs(t, err, visualijoper.ErrUnsupportedMeasure)
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestCyclicAlias(t *testing.T) {
	_, err := execute(t, "a: &x [1, *x]\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, visualijoper.ErrCyclicAlias)
}
