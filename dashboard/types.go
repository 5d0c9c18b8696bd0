// Package dashboard turns a session's utterance sequence and aggregate
// metrics into a render-ready view: a proportional discourse timeline,
// formatted metric pairs and the feedback cards for the session.
package dashboard

import "github.com/maastricht-university/ohcr-dashboard/clients"

// Utterance is a normalized speech segment. OHCR is "" when the record
// carried no discourse code; "?" is a present-but-unknown code.
type Utterance struct {
	ID     int
	TStart float64 // sec
	TEnd   float64 // sec
	Text   string
	Role   string
	Act    string
	OHCR   string
}

// TimelineState is the three-way outcome of laying out a session.
type TimelineState int

const (
	// StateNoData: the session has no utterances at all.
	StateNoData TimelineState = iota
	// StateNoSequences: utterances exist but none carries a discourse code.
	StateNoSequences
	// StateRendered: at least one coded utterance, segments are populated.
	StateRendered
)

// TimelineSegment is one positioned, colored bar on the timeline.
// LeftPercent/WidthPercent are relative to the session bounds.
type TimelineSegment struct {
	Code         string  `json:"code"`
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	LeftPercent  float64 `json:"left_percent"`
	WidthPercent float64 `json:"width_percent"`
	Tooltip      string  `json:"tooltip"`
}

type LegendEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type TimelineView struct {
	State    TimelineState     `json:"state"`
	Segments []TimelineSegment `json:"segments,omitempty"`
	Legend   []LegendEntry     `json:"legend,omitempty"`
}

func (v TimelineView) NoData() bool      { return v.State == StateNoData }
func (v TimelineView) NoSequences() bool { return v.State == StateNoSequences }
func (v TimelineView) Rendered() bool    { return v.State == StateRendered }

// Metric is one display-ready (label, value) pair for the metrics grid.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ViewModel is the complete render-ready dashboard for one session.
type ViewModel struct {
	SessionID   string                 `json:"session_id"`
	Metrics     []Metric               `json:"metrics,omitempty"`
	Timeline    TimelineView           `json:"timeline"`
	Feedback    []clients.FeedbackCard `json:"feedback,omitempty"`
	Affirmation string                 `json:"affirmation,omitempty"`
}
