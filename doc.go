// Package visualijoper renders any Go value as a collapsible HTML tree for
// debugging.
//
// The central entry points are [New] with [Renderer.Render], and the
// one-shot helpers [Dump] and [Print]:
//
//	fmt.Fprint(w, visualijoper.New(order, visualijoper.WithLabel("order")).Render())
//	visualijoper.Dump(w, order)
//
// # Kinds
//
// Every value is classified into exactly one [Kind] by [Classify]:
//
//   - [KindNull] — nil pointers, nil interfaces, untyped nil
//   - [KindString] — any string kind
//   - [KindInteger] — signed and unsigned integers
//   - [KindFloat] — float32 and float64
//   - [KindArray] — slices, arrays, maps and [Map]
//   - [KindObject] — structs, directly or through pointers
//   - [KindBoolean] — bool
//   - [KindUnknown] — everything else (channels, funcs, complex numbers)
//
// Strings, arrays and objects are expandable: their header is clickable and
// a body below it shows the full text or one row per entry.
//
// # Summaries
//
// Each header and row shows a short summary of its value. Strings show
// their first 100 code points followed by their total length, e.g.
// "hello (5 symbols)". Use [WithMeasure] to count graphemes, display
// columns or bytes instead, and [WithSummaryLimit] to change the limit.
// Arrays show "(1 element)" or "(N elements)", objects show their type
// name and booleans show "True" or "False".
//
// # Order
//
// Slices and arrays render in index order. Native maps render sorted by
// key. Use [Map] to keep insertion order. Structs render their fields in
// declaration order through a [FieldMapper]: [ExportedFields] by default,
// [AllFields] to include unexported fields.
//
// # Cycles
//
// A container that contains itself renders a "*cyclic reference*" marker
// row where it is revisited instead of recursing forever. Values shared
// between branches without forming a cycle render in full each time.
//
// # Assets
//
// The markup needs the bundled stylesheet and script ([CSS], [JS]). The
// first render that shares an [Assets] tracker prepends both; later renders
// skip them. Without [WithAssets] the process-wide [DefaultAssets] tracker
// is used, so a long-running server should pass one tracker per page.
//
// # Footer
//
// The footer names the file and line that called Render, Dump or Print.
// Replace the lookup with [WithCaller].
//
// # Input documents
//
// [DecodeYAML] and [DecodeYAMLDocuments] turn YAML or JSON into values that
// render with their keys in written order.
//
// # Errors
//
// Rendering itself never fails. The package exports sentinel errors for
// the operations that can:
//
//   - [ErrUnsupportedMeasure] — unknown measure name
//   - [ErrCyclicAlias] — a YAML alias that contains itself
//   - [ErrAliasExpansion] — YAML aliases that expand a document far beyond
//     its written size
package visualijoper
