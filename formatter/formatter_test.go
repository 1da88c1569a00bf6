package formatter

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/rmq"
	"github.com/npillmayer/rmq/accumulate"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sumRmq(t *testing.T, values ...int) *rmq.Rmq[int, int] {
	t.Helper()
	r, err := rmq.New(rmq.Config[int, int]{Accumulator: accumulate.Sum[int]()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.Init(values)
	return r
}

func TestDot(t *testing.T) {
	r := sumRmq(t, 5, 2, 8, 1, 9)
	var buf bytes.Buffer
	if err := Dot(r, &buf, nil); err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("output is not a DOT digraph:\n%s", out)
	}
	for i := 0; i < 15; i++ {
		if !strings.Contains(out, "\""+strconv.Itoa(i)+"\" [label=") {
			t.Errorf("node %d missing in DOT output", i)
		}
	}
	if !strings.Contains(out, "\"0\" -> \"1\";") || !strings.Contains(out, "\"6\" -> \"14\";") {
		t.Errorf("edges missing in DOT output:\n%s", out)
	}
	if !strings.Contains(out, "25\\n[0..7]") {
		t.Errorf("root label missing in DOT output:\n%s", out)
	}
	if strings.Count(out, "style=dashed") != 4 {
		t.Errorf("expected 4 padding nodes in DOT output:\n%s", out)
	}
}

func TestDotEscapesLabels(t *testing.T) {
	acc := accumulate.Simple(func(a, b string) string { return a + b })
	r, err := rmq.New(rmq.Config[string, accumulate.Option[string]]{Accumulator: acc})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.Init([]string{`"q"`})
	var buf bytes.Buffer
	label := func(o accumulate.Option[string]) string { return o.OrElse("-") }
	if err := Dot(r, &buf, label); err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if !strings.Contains(buf.String(), `\"q\"`) {
		t.Fatalf("quotes not escaped:\n%s", buf.String())
	}
}

func TestConsolePrint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer func() {
		teardown()
		gtrace.CoreTracer = gologadapter.New()
	}()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	color.NoColor = true
	r := sumRmq(t, 5, 2, 8, 1, 9)
	console := NewConsole(96)
	var buf bytes.Buffer
	if err := Print(console, &buf, r, nil); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 levels, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "25[0..7]") {
		t.Errorf("root missing in first line: %q", lines[0])
	}
	for _, leaf := range []string{"5[0..0]", "2[1..1]", "8[2..2]", "1[3..3]", "9[4..4]", "0[pad]"} {
		if !strings.Contains(lines[3], leaf) {
			t.Errorf("leaf %q missing in last line: %q", leaf, lines[3])
		}
	}
}

// failingWriter accepts limit bytes, then fails every write.
type failingWriter struct {
	limit int
}

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errWriteFailed
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestConsolePrintReportsWriteErrors(t *testing.T) {
	color.NoColor = true
	r := sumRmq(t, 5, 2, 8, 1, 9)
	console := NewConsole(96)
	var buf bytes.Buffer
	if err := Print(console, &buf, r, nil); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	// fail within the node text of the first level, and within a later level
	for _, limit := range []int{0, 3, buf.Len() - 1} {
		if err := Print(console, &failingWriter{limit: limit}, r, nil); !errors.Is(err, errWriteFailed) {
			t.Errorf("limit %d: expected write error, got %v", limit, err)
		}
	}
}

func TestConsoleWidthFromTerminal(t *testing.T) {
	console := NewConsole(0)
	if console.LineWidth <= 10 {
		t.Fatalf("expected sensible default line width, got %d", console.LineWidth)
	}
}

func TestHTML(t *testing.T) {
	r := sumRmq(t, 5, 2, 8)
	var buf bytes.Buffer
	if err := HTML(r, &buf, func(v int) string { return "<" + strconv.Itoa(v) + ">" }); err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `<table class="rmq">`) || !strings.HasSuffix(out, "</table>") {
		t.Fatalf("unexpected table markup: %s", out)
	}
	if strings.Count(out, "<tr>") != 3 {
		t.Errorf("expected 3 rows: %s", out)
	}
	if !strings.Contains(out, `colspan="4"`) || !strings.Contains(out, "&lt;15&gt;") {
		t.Errorf("root cell missing: %s", out)
	}
	if strings.Count(out, `class="padding"`) != 1 || strings.Count(out, `class="leaf"`) != 3 {
		t.Errorf("unexpected node classes: %s", out)
	}
}

func TestFormattersOnDestroyedRmq(t *testing.T) {
	r := sumRmq(t, 1)
	r.Destroy()
	var buf bytes.Buffer
	if err := HTML(r, &buf, nil); err != nil || buf.String() != `<table class="rmq"></table>` {
		t.Fatalf("unexpected output for destroyed rmq: %q (%v)", buf.String(), err)
	}
	buf.Reset()
	if err := Print(NewConsole(40), &buf, r, nil); err != nil || buf.Len() != 0 {
		t.Fatalf("unexpected console output for destroyed rmq: %q (%v)", buf.String(), err)
	}
}
