// Package zerologx emits input failures as structured zerolog fields.
//
// The core package stays logging-free; this adapter is the one place that
// knows about a logger.
package zerologx

import (
	"strings"

	"github.com/rs/zerolog"

	xgxinput "github.com/xgx-io/xgx-input"
)

// Details returns a marshaler that writes d as an object:
//
//	{"kind":"expected_value","operation":"consume","description":"...",
//	 "offset":6,"length":3,"retry":1,"context":["consume","read protocol"]}
//
// retry is omitted when no amount of input would help. context is present
// only when d carries a context stack.
func Details(d xgxinput.Details) zerolog.LogObjectMarshaler {
	return details{d: d}
}

type details struct {
	d xgxinput.Details
}

func (o details) MarshalZerologObject(e *zerolog.Event) {
	d := o.d
	if k, ok := d.(interface{ Kind() xgxinput.Kind }); ok {
		e.Str("kind", string(k.Kind()))
	}
	e.Str("operation", d.Context().Operation())

	var sb strings.Builder
	if err := d.Description(&sb); err == nil {
		e.Str("description", sb.String())
	}

	off, _ := d.Span().OffsetIn(d.Input())
	e.Int("offset", off)
	e.Int("length", d.Span().Len())
	if r, ok := d.RetryRequirement(); ok {
		e.Uint("retry", uint(r))
	}

	if cs, ok := xgxinput.ContextStackOf(asError(d)); ok {
		arr := zerolog.Arr()
		xgxinput.Walk(cs, func(_ int, c xgxinput.Context) bool {
			arr.Str(c.Operation())
			return true
		})
		e.Array("context", arr)
	}
}

func asError(d xgxinput.Details) error {
	if err, ok := d.(error); ok {
		return err
	}
	return nil
}

// Err attaches err to ev. Failures that keep Details are written as an
// "input_error" object; anything else falls back to ev.Err.
func Err(ev *zerolog.Event, err error) *zerolog.Event {
	if d, ok := xgxinput.DetailsOf(err); ok {
		return ev.Object("input_error", Details(d))
	}
	if r, ok := xgxinput.RetryRequirementOf(err); ok {
		ev = ev.Uint("retry", uint(r))
	}
	return ev.Err(err)
}
