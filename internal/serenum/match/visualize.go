package match

import (
	"go/token"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// visualizer renders the texts of variants as a table:
//
//	ok:   Full    -> "full"
//	FAIL: Half    -> ? // missing text
//	ok:   Unknown .. ? // skipped at main.go:20:3
type visualizer struct {
	rows *linkedhashmap.Map // token.Pos -> row
}

func newVisualizer() *visualizer {
	return &visualizer{rows: linkedhashmap.New()}
}

// row is a line of the table.
type row struct {
	name    string
	text    string
	hasText bool
	ok      bool
	skipped bool
	reason  string
}

// IsValid reports whether all rows are ok.
func (vis *visualizer) IsValid() bool {
	for it := vis.rows.Iterator(); it.Next(); {
		if !it.Value().(row).ok {
			return false
		}
	}
	return true
}

// put sets the row of the variant at pos. A replaced row keeps its place.
func (vis *visualizer) put(pos token.Pos, r row) {
	vis.rows.Put(pos, r)
}

func (vis *visualizer) get(pos token.Pos) (row, bool) {
	r, ok := vis.rows.Get(pos)
	if !ok {
		return row{}, false
	}
	return r.(row), true
}

// String returns the table in the order rows were first put.
func (vis *visualizer) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 1, 1, 1, ' ', 0)

	first := true
	for it := vis.rows.Iterator(); it.Next(); {
		r := it.Value().(row)

		if first {
			first = false
		} else {
			io.WriteString(tw, "\n")
		}

		if r.ok {
			io.WriteString(tw, "ok:\t")
		} else {
			io.WriteString(tw, "FAIL:\t")
		}

		io.WriteString(tw, r.name)

		if r.skipped {
			io.WriteString(tw, "\t..\t")
		} else {
			io.WriteString(tw, "\t->\t")
		}

		if r.hasText {
			io.WriteString(tw, quote(r.text))
		} else {
			io.WriteString(tw, "?")
		}

		if r.reason != "" {
			io.WriteString(tw, "\t// ")
			io.WriteString(tw, r.reason)
		}
	}

	tw.Flush()
	return b.String()
}
