package snapshot_test

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/rmq"
	"github.com/npillmayer/rmq/accumulate"
	"github.com/npillmayer/rmq/snapshot"
)

type record struct {
	Name   string
	Scores []int
	Tags   map[string]int
	Next   *record
}

func TestDeepCloneSharesNothing(t *testing.T) {
	orig := record{
		Name:   "a",
		Scores: []int{1, 2, 3},
		Tags:   map[string]int{"x": 1},
		Next:   &record{Name: "b"},
	}
	clone, err := snapshot.DeepClone(orig)
	if err != nil {
		t.Fatalf("DeepClone failed: %v", err)
	}
	orig.Scores[0] = 100
	orig.Tags["x"] = 100
	orig.Next.Name = "changed"
	if clone.Scores[0] != 1 || clone.Tags["x"] != 1 || clone.Next.Name != "b" {
		t.Fatalf("clone shares memory with original: %+v", clone)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, c := range []snapshot.Codec{snapshot.Gob, snapshot.YAML, nil} {
		var buf bytes.Buffer
		in := record{Name: "n", Scores: []int{4, 5}}
		if err := snapshot.Serialize(c, &buf, in); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		out, err := snapshot.Deserialize[record](c, &buf)
		if err != nil {
			t.Fatalf("Deserialize failed: %v", err)
		}
		if out.Name != "n" || !slices.Equal(out.Scores, []int{4, 5}) {
			t.Fatalf("unexpected round trip result %+v", out)
		}
	}
}

func TestYAMLIsReadable(t *testing.T) {
	data, err := snapshot.Compress(snapshot.YAML, []int{5, 2, 8})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !strings.Contains(string(data), "- 5") {
		t.Fatalf("expected YAML list, got %q", data)
	}
}

func TestExtractTypeMismatch(t *testing.T) {
	data, err := snapshot.Compress(snapshot.Gob, "a string")
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if _, err = snapshot.Extract[[]int](snapshot.Gob, data); !errors.Is(err, snapshot.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestSequenceOfRmqElements(t *testing.T) {
	r, err := rmq.New(rmq.Config[int, int]{Accumulator: accumulate.Sum[int]()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r.Init([]int{5, 2, 8, 1, 9})
	snap, err := snapshot.Sequence(r.Elements())
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	_ = r.Set(0, 42)
	r.Destroy()
	if !slices.Equal(snap, []int{5, 2, 8, 1, 9}) {
		t.Fatalf("snapshot did not survive mutation and destruction: %v", snap)
	}
	empty, err := snapshot.Sequence(r.Elements())
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty snapshot, got %v (%v)", empty, err)
	}
	if none, err := snapshot.Sequence[int](nil); err != nil || len(none) != 0 {
		t.Fatalf("expected empty snapshot for nil sequence, got %v (%v)", none, err)
	}
}

type opaque struct {
	hidden int
}

func TestDeepCloneRejectsGobLimits(t *testing.T) {
	if _, err := snapshot.DeepClone(opaque{hidden: 1}); !errors.Is(err, snapshot.ErrEncode) {
		t.Fatalf("expected ErrEncode for type without exported fields, got %v", err)
	}
	if _, err := snapshot.DeepClone([]*record{{Name: "a"}, nil}); !errors.Is(err, snapshot.ErrEncode) {
		t.Fatalf("expected ErrEncode for slice with nil element, got %v", err)
	}
	if _, err := snapshot.Sequence(slices.Values([]*record{nil})); !errors.Is(err, snapshot.ErrEncode) {
		t.Fatalf("expected ErrEncode for sequence with nil element, got %v", err)
	}
	type partial struct {
		Name   string
		hidden int
	}
	clone, err := snapshot.DeepClone(partial{Name: "a", hidden: 7})
	if err != nil || clone.Name != "a" || clone.hidden != 0 {
		t.Fatalf("expected unexported field to be dropped, got %+v (%v)", clone, err)
	}
}
