package dashboard

import (
	"fmt"
	"strings"
)

// minWidthPercent keeps every segment visible and hoverable even when its
// duration is a sub-pixel share of the session.
const minWidthPercent = 0.8

type display struct {
	Label string
	Color string
}

// codeDisplay maps the four OHCR discourse moves to their fixed colors.
// Anything else resolves to unknownDisplay, so the lookup is total.
var codeDisplay = map[string]display{
	"O": {Label: "Observe", Color: "#1f6feb"},
	"H": {Label: "Hypothesize", Color: "#2ea043"},
	"C": {Label: "Challenge", Color: "#d29922"},
	"R": {Label: "Resolve", Color: "#f85149"},
}

var unknownDisplay = display{Label: "Untagged", Color: "#6e7681"}

func displayFor(code string) display {
	if d, ok := codeDisplay[code]; ok {
		return d
	}
	return unknownDisplay
}

// legendOrder is the fixed legend: the four moves plus the unknown bucket.
var legendOrder = []string{"O", "H", "C", "R", "?"}

func legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(legendOrder))
	for _, c := range legendOrder {
		d := displayFor(c)
		out = append(out, LegendEntry{Code: c, Label: d.Label, Color: d.Color})
	}
	return out
}

// Layout positions the utterances on a proportional timeline.
//
// Empty input yields NoData. Input where no record carries a discourse code
// at all yields NoSequences. Otherwise every record becomes one segment, in
// input order; position is computed against the session bounds
// (min t_start .. max t_end), never by sorting. The duration floor of 1s
// guards the degenerate single-instant session, the width floor keeps every
// segment visible. A raw width may come out negative when t_end < t_start;
// it is left unclamped because the width floor overrides it anyway.
func Layout(utts []Utterance) TimelineView {
	if len(utts) == 0 {
		return TimelineView{State: StateNoData}
	}

	tagged := false
	for _, u := range utts {
		if u.OHCR != "" {
			tagged = true
			break
		}
	}
	if !tagged {
		return TimelineView{State: StateNoSequences}
	}

	start, end := utts[0].TStart, utts[0].TEnd
	for _, u := range utts[1:] {
		if u.TStart < start {
			start = u.TStart
		}
		if u.TEnd > end {
			end = u.TEnd
		}
	}
	duration := end - start
	if duration < 1 {
		duration = 1
	}

	segs := make([]TimelineSegment, 0, len(utts))
	for _, u := range utts {
		code := u.OHCR
		if code == "" {
			code = "?"
		}
		d := displayFor(code)

		width := (u.TEnd - u.TStart) / duration * 100
		if width < minWidthPercent {
			width = minWidthPercent
		}
		segs = append(segs, TimelineSegment{
			Code:         code,
			Label:        d.Label,
			Color:        d.Color,
			LeftPercent:  (u.TStart - start) / duration * 100,
			WidthPercent: width,
			Tooltip:      fmt.Sprintf("%s %.1fs - %.1fs", strings.ToUpper(code), u.TStart, u.TEnd),
		})
	}

	return TimelineView{State: StateRendered, Segments: segs, Legend: legend()}
}
