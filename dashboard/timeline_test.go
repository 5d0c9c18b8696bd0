package dashboard

import (
	"reflect"
	"testing"
)

func TestLayoutEmptyIsNoData(t *testing.T) {
	v := Layout(nil)
	if !v.NoData() {
		t.Fatalf("expected NoData, got state %d", v.State)
	}
	if len(v.Segments) != 0 {
		t.Fatalf("NoData view should carry no segments")
	}
}

func TestLayoutUntaggedIsNoSequences(t *testing.T) {
	v := Layout([]Utterance{{TStart: 0, TEnd: 1}})
	if !v.NoSequences() {
		t.Fatalf("expected NoSequences, got state %d", v.State)
	}
}

func TestLayoutSingleInstantSession(t *testing.T) {
	v := Layout([]Utterance{{TStart: 5, TEnd: 5, OHCR: "O"}})
	if !v.Rendered() {
		t.Fatalf("expected Rendered, got state %d", v.State)
	}
	if len(v.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(v.Segments))
	}
	s := v.Segments[0]
	if s.WidthPercent != minWidthPercent {
		t.Fatalf("expected width %v, got %v", minWidthPercent, s.WidthPercent)
	}
	if s.LeftPercent != 0 {
		t.Fatalf("expected left 0, got %v", s.LeftPercent)
	}
}

func TestLayoutProportions(t *testing.T) {
	v := Layout([]Utterance{
		{TStart: 0, TEnd: 10, OHCR: "O"},
		{TStart: 10, TEnd: 20, OHCR: "H"},
	})
	if !v.Rendered() {
		t.Fatalf("expected Rendered, got state %d", v.State)
	}
	first, second := v.Segments[0], v.Segments[1]
	if first.LeftPercent != 0 || first.WidthPercent != 50 {
		t.Fatalf("first segment: left %v width %v", first.LeftPercent, first.WidthPercent)
	}
	if second.LeftPercent != 50 || second.WidthPercent != 50 {
		t.Fatalf("second segment: left %v width %v", second.LeftPercent, second.WidthPercent)
	}
}

func TestLayoutWidthFloor(t *testing.T) {
	utts := []Utterance{
		{TStart: 0, TEnd: 0.01, OHCR: "O"},
		{TStart: 0.01, TEnd: 0.02, OHCR: "H"},
		{TStart: 0.02, TEnd: 100, OHCR: "R"},
	}
	v := Layout(utts)
	for i, s := range v.Segments {
		if s.WidthPercent < minWidthPercent {
			t.Fatalf("segment %d width %v below floor", i, s.WidthPercent)
		}
	}
}

// A raw width can come out negative when t_end < t_start; the visibility
// floor overrides it rather than a separate zero clamp.
func TestLayoutNegativeWidthFloored(t *testing.T) {
	v := Layout([]Utterance{
		{TStart: 0, TEnd: 10, OHCR: "O"},
		{TStart: 8, TEnd: 3, OHCR: "C"},
	})
	if got := v.Segments[1].WidthPercent; got != minWidthPercent {
		t.Fatalf("expected floored width %v, got %v", minWidthPercent, got)
	}
}

func TestLayoutPermutationIndependentGeometry(t *testing.T) {
	utts := []Utterance{
		{ID: 0, TStart: 0, TEnd: 5, OHCR: "O"},
		{ID: 1, TStart: 5, TEnd: 12, OHCR: "H"},
		{ID: 2, TStart: 12, TEnd: 20, OHCR: "C"},
	}
	reversed := []Utterance{utts[2], utts[1], utts[0]}

	byCode := func(v TimelineView) map[string]TimelineSegment {
		m := make(map[string]TimelineSegment)
		for _, s := range v.Segments {
			m[s.Code] = s
		}
		return m
	}
	a, b := byCode(Layout(utts)), byCode(Layout(reversed))
	for code, sa := range a {
		sb := b[code]
		if sa.LeftPercent != sb.LeftPercent || sa.WidthPercent != sb.WidthPercent {
			t.Fatalf("geometry for %s differs across permutations: %+v vs %+v", code, sa, sb)
		}
	}
}

func TestLayoutEmitsInputOrder(t *testing.T) {
	v := Layout([]Utterance{
		{TStart: 12, TEnd: 20, OHCR: "R"},
		{TStart: 0, TEnd: 5, OHCR: "O"},
	})
	if v.Segments[0].Code != "R" || v.Segments[1].Code != "O" {
		t.Fatalf("segments reordered: %s, %s", v.Segments[0].Code, v.Segments[1].Code)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	utts := []Utterance{
		{TStart: 0, TEnd: 3, OHCR: "O"},
		{TStart: 3, TEnd: 3.5},
		{TStart: 4, TEnd: 9, OHCR: "X"},
	}
	if !reflect.DeepEqual(Layout(utts), Layout(utts)) {
		t.Fatal("layout is not deterministic for identical input")
	}
}

func TestLayoutUnknownCodeMapsToUnknownBucket(t *testing.T) {
	v := Layout([]Utterance{
		{TStart: 0, TEnd: 1, OHCR: "X"},
		{TStart: 1, TEnd: 2},
		{TStart: 2, TEnd: 3, OHCR: "O"},
	})
	unknownValued, absent := v.Segments[0], v.Segments[1]
	if unknownValued.Color != unknownDisplay.Color {
		t.Fatalf("code X should map to the unknown color, got %s", unknownValued.Color)
	}
	if absent.Color != unknownValued.Color || absent.Label != unknownValued.Label {
		t.Fatalf("absent code should render identically to unknown code: %+v vs %+v", absent, unknownValued)
	}
	if absent.Code != "?" {
		t.Fatalf("absent code should display as ?, got %q", absent.Code)
	}
}

func TestLayoutTooltipFormat(t *testing.T) {
	v := Layout([]Utterance{{TStart: 0, TEnd: 1.56, OHCR: "o"}})
	want := "O 0.0s - 1.6s"
	if got := v.Segments[0].Tooltip; got != want {
		t.Fatalf("tooltip %q, want %q", got, want)
	}
}

// Every known code must resolve to its own color and anything else to the
// unknown bucket, so the lookup is total.
func TestDisplayLookupIsTotal(t *testing.T) {
	for _, code := range []string{"O", "H", "C", "R"} {
		d := displayFor(code)
		if d == unknownDisplay {
			t.Fatalf("known code %s fell through to the unknown bucket", code)
		}
	}
	for _, code := range []string{"?", "X", "", "OH", "o"} {
		if d := displayFor(code); d != unknownDisplay {
			t.Fatalf("code %q should resolve to the unknown bucket, got %+v", code, d)
		}
	}
	if got := len(legend()); got != 5 {
		t.Fatalf("legend should have 5 entries, got %d", got)
	}
}
