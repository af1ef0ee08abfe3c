package simulate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpane/internal/jsonutil"
	"splitpane/internal/layout"
)

const demoScript = `
group: demo
direction: horizontal
panels:
  - id: left
    min_size: 10
    collapsible: true
    default_size: 20
  - id: main
    min_size: 30
    default_size: 50
  - id: right
    min_size: 15
    collapsible: true
steps:
  - before: left
    after: main
    delta: 10
  - collapse: left
  - expand: left
  - handle: divider-1
    kind: keyboard
    delta: 100
  - key: left
    handle: divider-0
  - resize_panel: main
    size: 50
  - key: up
    handle: divider-0
`

func TestRun_DemoScript(t *testing.T) {
	s, err := Parse([]byte(demoScript), ".")
	require.NoError(t, err)

	ids, results, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"left", "main", "right"}, ids)

	want := []struct {
		op      string
		changed bool
		sizes   layout.Sizes
	}{
		{"initial", false, layout.Sizes{20, 50, 30}},
		{"resize", true, layout.Sizes{30, 40, 30}},
		{"collapse", true, layout.Sizes{0, 70, 30}},
		{"expand", true, layout.Sizes{30, 40, 30}},
		{"resize", true, layout.Sizes{30, 70, 0}},
		{"key", true, layout.Sizes{20, 80, 0}},
		{"resize_panel", true, layout.Sizes{20, 50, 30}},
		{"key", false, layout.Sizes{20, 50, 30}},
	}
	require.Len(t, results, len(want))
	for i, w := range want {
		assert.Equal(t, i, results[i].Step)
		assert.Equal(t, w.op, results[i].Op, "step %d", i)
		assert.Equal(t, w.changed, results[i].Changed, "step %d", i)
		assert.Equal(t, w.sizes, results[i].Sizes, "step %d", i)
	}
	assert.Equal(t, []string{"left"}, results[2].Collapsed)
	assert.Equal(t, []string{"right"}, results[4].Collapsed)
	assert.Empty(t, results[6].Collapsed)
}

func TestRun_ObserverSeesSteps(t *testing.T) {
	s, err := Parse([]byte(demoScript), ".")
	require.NoError(t, err)

	var names []string
	obs := layout.ObserverFunc(func(_ context.Context, op layout.Operation) { names = append(names, op.Name) })
	_, _, err = Run(context.Background(), s, obs)
	require.NoError(t, err)

	// The final key step moves nothing and never reaches the group.
	assert.Equal(t, []string{"resize", "collapse", "expand", "resize", "resize", "resize_panel"}, names)
}

func TestRun_UnknownIDs(t *testing.T) {
	for name, step := range map[string]string{
		"panel":  "  - collapse: nope",
		"handle": "  - enter: divider-9",
		"before": "  - before: nope\n    after: main\n    delta: 5",
	} {
		t.Run(name, func(t *testing.T) {
			src := strings.SplitN(demoScript, "steps:", 2)[0] + "steps:\n" + step + "\n"
			s, err := Parse([]byte(src), ".")
			require.NoError(t, err)

			_, results, err := Run(context.Background(), s, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "step 1")
			assert.Len(t, results, 1, "only the initial layout is reported")
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	s, err := Parse([]byte(demoScript), ".")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, results, err := Run(ctx, s, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
}

func TestParse_Errors(t *testing.T) {
	head := strings.SplitN(demoScript, "steps:", 2)[0]
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"two operations", head + "steps:\n  - collapse: left\n    expand: left\n", "collapse and expand"},
		{"bad kind", head + "steps:\n  - handle: divider-0\n    kind: touch\n", "kind"},
		{"resize without divider", head + "steps:\n  - before: left\n    delta: 5\n", "before and after"},
		{"key without handle", head + "steps:\n  - key: left\n", "key needs handle"},
		{"no panels", "steps: []\n", "no panels"},
		{"bad yaml", "panels: [", "parse yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), ".")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_LayoutFile(t *testing.T) {
	dir := t.TempDir()
	layoutYAML := "direction: vertical\npanels:\n  - id: top\n  - id: bottom\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layout.yaml"), []byte(layoutYAML), 0o644))
	scriptYAML := "layout: layout.yaml\nsteps:\n  - handle: divider-0\n    delta: 25\n"
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scriptYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vertical", s.Direction)

	_, results, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, layout.Sizes{75, 25}, results[1].Sizes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read script")
}

func TestWriteTable(t *testing.T) {
	s, err := Parse([]byte(demoScript), ".")
	require.NoError(t, err)
	ids, results, err := Run(context.Background(), s, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, ids, results))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(results)+1)

	assert.Equal(t, []string{"STEP", "OP", "LEFT", "MAIN", "RIGHT", "CHANGED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "initial", "20", "50", "30"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "collapse", "0", "70", "30", "yes"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"7", "key", "20", "50", "30", "-"}, strings.Fields(lines[8]))
}

func TestWriteJSON(t *testing.T) {
	results := []Result{
		{Step: 0, Op: "initial", Sizes: layout.Sizes{50, 50}},
		{Step: 1, Op: "collapse", Changed: true, Sizes: layout.Sizes{0, 100}, Collapsed: []string{"a"}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, results))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "collapsed", "empty collapsed list is omitted")

	var got Result
	require.NoError(t, jsonutil.UnmarshalLine(lines[1], &got))
	assert.Equal(t, results[1], got)

	read, err := ReadJSON(strings.NewReader(buf.String() + "\n"))
	require.NoError(t, err)
	assert.Equal(t, results, read)
	assert.Empty(t, Compare(results, read))
}

func TestReadJSON_BadLine(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{\"step\":0}\nnot json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCompare(t *testing.T) {
	want := []Result{
		{Step: 0, Op: "initial", Sizes: layout.Sizes{50, 50}},
		{Step: 1, Op: "collapse", Changed: true, Sizes: layout.Sizes{0, 100}, Collapsed: []string{"a"}},
	}
	got := []Result{
		{Step: 0, Op: "initial", Sizes: layout.Sizes{50.00000000001, 49.99999999999}},
		{Step: 1, Op: "expand", Changed: false, Sizes: layout.Sizes{10, 90}},
		{Step: 2, Op: "toggle", Sizes: layout.Sizes{50, 50}},
	}

	assert.Equal(t, []string{
		"step 1: op expand, want collapse",
		"step 1: changed false, want true",
		"step 1: sizes [10 90], want [0 100]",
		"step 1: collapsed [], want [a]",
		"3 results, want 2",
	}, Compare(want, got))
}
