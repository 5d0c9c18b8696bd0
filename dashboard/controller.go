package dashboard

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/ohcr-dashboard/clients"
)

// noImprovements is shown in place of feedback cards when the analysis
// flagged nothing to work on.
const noImprovements = "No improvement areas flagged for this session. Nice work!"

// Controller owns the view state for one displayed session: the utterance
// sequence and the most recent summary. State is replaced wholesale on each
// accepted load and discarded when the session changes; derived views are
// recomputed on every View call, never cached.
type Controller struct {
	fetcher *Fetcher
	log     *logrus.Logger

	mu      sync.Mutex
	session string
	utts    []Utterance
	summary *clients.Summary
}

func NewController(client resultsClient, log *logrus.Logger) *Controller {
	return &Controller{fetcher: NewFetcher(client, log), log: log}
}

// Init loads the initial session. Equivalent to Replace on a fresh container.
func (c *Controller) Init(ctx context.Context, sessionID string) {
	c.Replace(ctx, sessionID)
}

// Replace switches the container to sessionID: prior state is discarded
// immediately, then the new sequence is fetched and committed unless a later
// Replace started in the meantime.
func (c *Controller) Replace(ctx context.Context, sessionID string) {
	c.mu.Lock()
	c.session = sessionID
	c.utts = nil
	c.summary = nil
	c.mu.Unlock()

	utts, summary, ok := c.fetcher.Load(ctx, sessionID)
	if !ok {
		c.log.WithField("session", sessionID).Debug("stale results discarded")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != sessionID {
		return
	}
	c.utts = utts
	if summary != nil {
		c.summary = summary
	}
}

// SetSummary adopts a summary handed over by the upload collaborator, e.g.
// straight from the upload response, without a results round-trip.
func (c *Controller) SetSummary(s *clients.Summary) {
	c.mu.Lock()
	c.summary = s
	c.mu.Unlock()
}

// Summary returns the current session's summary, or nil when none arrived.
func (c *Controller) Summary() *clients.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// Dispose drops all state and invalidates any in-flight load.
func (c *Controller) Dispose() {
	c.fetcher.Cancel()
	c.mu.Lock()
	c.session = ""
	c.utts = nil
	c.summary = nil
	c.mu.Unlock()
}

// View derives the render-ready dashboard from current state. Layout and
// formatting are pure, so the view is always consistent with the state at
// the moment of the call.
func (c *Controller) View() ViewModel {
	c.mu.Lock()
	session := c.session
	utts := c.utts
	summary := c.summary
	c.mu.Unlock()

	vm := ViewModel{
		SessionID: session,
		Timeline:  Layout(utts),
	}
	if summary != nil {
		vm.Metrics = FormatMetrics(summary.Metrics)
		vm.Feedback = summary.Feedback
	}
	if len(vm.Feedback) == 0 {
		vm.Affirmation = noImprovements
	}
	return vm
}
