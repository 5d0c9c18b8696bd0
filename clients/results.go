package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RawUtterance is one detected speech segment as the analysis backend emits
// it. Fields may be missing on older result files: absent timestamps decode
// to 0, an absent ohcr decodes to "" and means the segment carries no
// discourse code at all (distinct from the explicit unknown code "?").
type RawUtterance struct {
	UID    *int    `json:"u_id"`
	TStart float64 `json:"t_start"`
	TEnd   float64 `json:"t_end"`
	Text   string  `json:"text"`
	Role   string  `json:"role"`
	Act    string  `json:"disc_act"`
	OHCR   string  `json:"ohcr"`
}

// SessionMetrics are the aggregate scores computed upstream per session.
// Ranges are the upstream classifier's contract and are not re-checked here.
type SessionMetrics struct {
	KCScore        float64 `json:"kc_score"`
	OHCRIndex      float64 `json:"ohcr_index"`
	AvgHCDepth     float64 `json:"avg_hc_depth"`
	MaxHCDepth     float64 `json:"max_hc_depth"`
	StudentTalkPct float64 `json:"student_talk_pct"`
	Level5Pct      float64 `json:"level5_pct"`
}

type FeedbackCard struct {
	Title string   `json:"title"`
	Why   string   `json:"why"`
	How   []string `json:"how"`
}

type Summary struct {
	Metrics  SessionMetrics `json:"metrics"`
	Feedback []FeedbackCard `json:"feedback"`
}

type ResultsResp struct {
	Summary    *Summary       `json:"summary"`
	Utterances []RawUtterance `json:"utterances"`
}

func (h *HTTP) Results(ctx context.Context, sessionID string) (*ResultsResp, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		h.base+"/api/results/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("results %s: %s", resp.Status, string(body))
	}

	var out ResultsResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("results decode: %w", err)
	}
	return &out, nil
}
