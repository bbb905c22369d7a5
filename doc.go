// doc.go — package documentation for xgx-input
//
// Package xgxinput is the input-reading core for recoverable, zero-copy
// parsers over untrusted bytes (network frames, file formats, wire
// protocols). It provides:
//   - Spans that always trace back to a byte range of the caller's buffer
//   - A closed set of failure kinds with a uniform Details view
//   - Fast and verbose error representations chosen by a type argument
//   - A deterministic report renderer for the verbose form
//
// # Spans
//
// NewBytes and NewString borrow the caller's buffer. Every sub-range keeps a
// handle to that buffer, so containment (Span.IsWithin) is a question of
// offsets, not of equal bytes. The buffer must not change while reading.
// Raw bytes are only reachable through Span.RawBytesUnchecked.
//
// # Failure kinds
//
//	+----------------+----------------------------------+------------------------------+
//	| Kind           | Raised when                      | Retry requirement            |
//	+----------------+----------------------------------+------------------------------+
//	| ExpectedValue  | exact value mismatch             | value length - span length   |
//	| ExpectedLength | too short (no max)               | min - span length            |
//	| ExpectedLength | overrun (max present)            | never                        |
//	| ExpectedValid  | decoded value failed validation  | supplied by the caller       |
//	+----------------+----------------------------------+------------------------------+
//
// "Never" is reported as ok == false, not as zero.
//
// # Choosing a representation
//
// Reader[E] is generic over its error type:
//
//	err := xgxinput.ReadAll[xgxinput.Invalid](in, parse)   // retry info only
//	err := xgxinput.ReadAll[xgxinput.Fatal](in, parse)     // pass/fail only
//	err := xgxinput.ReadAll[xgxinput.Verbose](in, parse)   // full report
//
// For Fatal and Invalid, attaching context (Reader.Context) does no work. For
// Verbose it pushes the operation onto a context stack and widens the
// reported input to the enclosing one, but only when the current input lies
// inside it.
//
// # Retrying
//
// Nothing here buffers or performs I/O. When a read fails the caller asks
// RetryRequirementOf(err); if ok, it fetches at least that many more bytes and
// runs the whole top-level read again.
//
// # Formatting
//
// Every failure type implements fmt.Formatter:
//   - `%v`, `%s`   → "error attempting to <operation>: <description>"
//   - `%+v`        → multi-line report with the span marked, found and
//     expected values, and the context backtrace innermost first
//   - `%q`         → quoted concise form
//
// Display() on any failure returns the same report as an io.WriterTo.
//
// # Logging
//
// The core does not log. The zerologx package turns Details into structured
// zerolog fields.
package xgxinput
