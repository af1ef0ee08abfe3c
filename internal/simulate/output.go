package simulate

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"splitpane/internal/jsonutil"
	"splitpane/internal/layout"
)

// WriteTable prints one row per result with a column per panel. Sizes are shown
// to layout.Precision significant digits; unchanged steps are marked with "-".
func WriteTable(w io.Writer, ids []string, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "STEP\tOP\t%s\tCHANGED\n", strings.ToUpper(strings.Join(ids, "\t")))
	for _, r := range results {
		cols := formatSizes(r.Sizes)
		mark := "-"
		if r.Changed {
			mark = "yes"
		}
		if r.Step == 0 {
			mark = ""
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Step, r.Op, strings.Join(cols, "\t"), mark)
	}
	return tw.Flush()
}

// formatSizes renders sizes at layout.Precision significant digits.
func formatSizes(sizes layout.Sizes) []string {
	cols := make([]string, len(sizes))
	for i, v := range sizes {
		cols[i] = strconv.FormatFloat(v, 'g', layout.Precision, 64)
	}
	return cols
}

// WriteJSON prints one JSON object per result.
func WriteJSON(w io.Writer, results []Result) error {
	for _, r := range results {
		if err := jsonutil.WriteLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

// ReadJSON reads results in the format WriteJSON produces. Blank lines are skipped.
func ReadJSON(r io.Reader) ([]Result, error) {
	var out []Result
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var res Result
		if err := jsonutil.UnmarshalLine(line, &res); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, res)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Compare lists how got differs from want, one line per difference. Sizes are
// compared at layout.Precision significant digits.
func Compare(want, got []Result) []string {
	var diffs []string
	for i := 0; i < min(len(want), len(got)); i++ {
		w, g := want[i], got[i]
		if w.Op != g.Op {
			diffs = append(diffs, fmt.Sprintf("step %d: op %s, want %s", g.Step, g.Op, w.Op))
		}
		if w.Changed != g.Changed {
			diffs = append(diffs, fmt.Sprintf("step %d: changed %t, want %t", g.Step, g.Changed, w.Changed))
		}
		if ws, gs := formatSizes(w.Sizes), formatSizes(g.Sizes); !slices.Equal(ws, gs) {
			diffs = append(diffs, fmt.Sprintf("step %d: sizes [%s], want [%s]", g.Step, strings.Join(gs, " "), strings.Join(ws, " ")))
		}
		if !slices.Equal(w.Collapsed, g.Collapsed) {
			diffs = append(diffs, fmt.Sprintf("step %d: collapsed %v, want %v", g.Step, g.Collapsed, w.Collapsed))
		}
	}
	if len(want) != len(got) {
		diffs = append(diffs, fmt.Sprintf("%d results, want %d", len(got), len(want)))
	}
	return diffs
}
