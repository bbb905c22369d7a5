package xgxinput_test

import (
	"fmt"

	xgxinput "github.com/xgx-io/xgx-input"
)

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func Example() {
	in := xgxinput.NewBytes([]byte("hello<123>"))

	err := xgxinput.ReadAll(in, func(r *xgxinput.Reader[xgxinput.Verbose]) error {
		return r.Context("read protocol", func(r *xgxinput.Reader[xgxinput.Verbose]) error {
			r.TakeWhile(isAlpha)
			if err := r.Consume(xgxinput.Byte('<')); err != nil {
				return err
			}
			number := r.TakeUntil('>')
			return xgxinput.ReadAll(number, func(r *xgxinput.Reader[xgxinput.Verbose]) error {
				return r.Consume(xgxinput.Text("124"))
			})
		})
	})

	fmt.Printf("%+v", err)
	// Output:
	// error attempting to consume: found a different value to the exact expected
	// > "hello<123>"
	//          ^^^
	// additional:
	//   error offset: 6, error length: 3
	// found:
	// > "123"
	// expected:
	// > "124"
	// context backtrace:
	//   1. consume
	//   2. read protocol
}

func ExampleRetryRequirementOf() {
	stream := []byte("GET /index")
	have := 4

	for {
		err := xgxinput.ReadAll(xgxinput.NewBytes(stream[:have]), func(r *xgxinput.Reader[xgxinput.Invalid]) error {
			if err := r.Consume(xgxinput.Text("GET ")); err != nil {
				return err
			}
			_, err := r.Take(6)
			return err
		})
		if err == nil {
			fmt.Println("parsed with", have, "bytes")
			return
		}
		retry, ok := xgxinput.RetryRequirementOf(err)
		if !ok {
			fmt.Println("fatal:", err)
			return
		}
		fmt.Println("need", retry, "more")
		have = retry.Continue(have)
	}
	// Output:
	// need 6 more
	// parsed with 10 bytes
}
