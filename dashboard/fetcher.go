package dashboard

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/ohcr-dashboard/clients"
)

// resultsClient is the one upstream call the dashboard makes.
// *clients.HTTP satisfies it.
type resultsClient interface {
	Results(ctx context.Context, sessionID string) (*clients.ResultsResp, error)
}

// Fetcher retrieves a session's utterance sequence. Every Load bumps a
// generation counter; a result whose generation is no longer current by the
// time it arrives is reported stale so the caller never commits it. This is
// what keeps a slow response for session A from overwriting state after the
// view has moved on to session B.
type Fetcher struct {
	client resultsClient
	log    *logrus.Logger

	mu  sync.Mutex
	gen uint64
}

func NewFetcher(client resultsClient, log *logrus.Logger) *Fetcher {
	return &Fetcher{client: client, log: log}
}

// Load retrieves and normalizes the utterances for sessionID. It never
// returns an error: transport failures, non-OK statuses, malformed bodies
// and payloads without an utterances field all resolve to an empty sequence.
// An empty sessionID resolves immediately without a network call. The
// returned summary is non-nil only when the payload carried one. ok reports
// whether the result is still current; a stale result must be discarded.
func (f *Fetcher) Load(ctx context.Context, sessionID string) (utts []Utterance, summary *clients.Summary, ok bool) {
	gen := f.begin()

	if sessionID == "" {
		return nil, nil, f.current(gen)
	}

	resp, err := f.client.Results(ctx, sessionID)
	if err != nil {
		f.log.WithFields(logrus.Fields{"session": sessionID, "err": err}).
			Warn("results fetch failed, rendering empty")
		return nil, nil, f.current(gen)
	}
	if resp.Utterances == nil {
		f.log.WithField("session", sessionID).Debug("results payload has no utterances")
	}
	return Normalize(resp.Utterances), resp.Summary, f.current(gen)
}

// Cancel invalidates any in-flight Load without starting a new one.
func (f *Fetcher) Cancel() {
	f.mu.Lock()
	f.gen++
	f.mu.Unlock()
}

func (f *Fetcher) begin() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	return f.gen
}

func (f *Fetcher) current(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return gen == f.gen
}
