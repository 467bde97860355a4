// Package consult drives one legal question through its full lifecycle:
// validation, single-flight submission, outcome classification and history
// recording.
package consult

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/legalassist/internal/client/api"
	"github.com/dmitrijs2005/legalassist/internal/client/models"
	"github.com/dmitrijs2005/legalassist/internal/common"
	"github.com/dmitrijs2005/legalassist/internal/logging"
)

// User-facing copy. A failed submission always yields a readable answer
// string, never a blank state.
const (
	MsgNoAnswer     = "could not retrieve a response"
	MsgConnectivity = "Connection problem. Please try again later."
)

// Querier is the remote question endpoint.
type Querier interface {
	Ask(ctx context.Context, question string) (*api.QueryResponse, error)
}

// Recorder persists successful exchanges.
type Recorder interface {
	Append(ctx context.Context, entry models.HistoryEntry) ([]models.HistoryEntry, error)
}

type Controller struct {
	client  Querier
	history Recorder
	log     logging.Logger
	now     func() time.Time

	mu      sync.Mutex
	status  models.Status
	answer  string
	sources []models.Source
}

func NewController(client Querier, history Recorder, log logging.Logger) *Controller {
	return &Controller{client: client, history: history, log: log, now: time.Now}
}

// Outcome returns a snapshot of the current display state.
func (c *Controller) Outcome() models.QueryOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.QueryOutcome{Answer: c.answer, Sources: c.sources, Status: c.status}
}

// Submit drives one question to a terminal outcome.
//
// An empty (after trimming) question and a submission arriving while another
// is pending are no-ops: no state change, no network call, and the sentinel
// errors common.ErrEmptyQuestion / common.ErrSubmissionInFlight are returned
// alongside the unchanged outcome snapshot.
//
// Every other call makes exactly one network round-trip and reaches exactly
// one terminal status. A protocol-level failure embeds the server message in
// the answer text; a transport failure yields generic connectivity copy.
// Only a success appends a history entry.
func (c *Controller) Submit(ctx context.Context, questionText string) (models.QueryOutcome, error) {
	question := strings.TrimSpace(questionText)
	if question == "" {
		return c.Outcome(), common.ErrEmptyQuestion
	}
	if !c.begin() {
		return c.Outcome(), common.ErrSubmissionInFlight
	}

	// Pending is cleared exactly once, whatever happens below.
	out := models.QueryOutcome{Status: models.StatusFailed, Answer: MsgConnectivity}
	defer func() { c.finish(out) }()

	resp, err := c.client.Ask(ctx, question)
	if err != nil {
		out = c.classifyFailure(ctx, err)
		return out, nil
	}

	out = models.QueryOutcome{Status: models.StatusSuccess, Answer: resp.Answer, Sources: resp.Sources}

	entry := models.HistoryEntry{
		Question:  question,
		Answer:    resp.Answer,
		Timestamp: c.now().UnixMilli(),
	}
	if _, err := c.history.Append(ctx, entry); err != nil {
		// история не должна ронять успешный ответ
		c.log.Error(ctx, "failed to record history entry", "error", err)
	}

	return out, nil
}

func (c *Controller) classifyFailure(ctx context.Context, err error) models.QueryOutcome {
	var perr *api.ProtocolError
	if errors.As(err, &perr) {
		msg := perr.Message
		if msg == "" {
			msg = MsgNoAnswer
		}
		return models.QueryOutcome{Status: models.StatusFailed, Answer: fmt.Sprintf("Error: %s", msg)}
	}

	c.log.Warn(ctx, "query transport failure", "error", err)
	return models.QueryOutcome{Status: models.StatusFailed, Answer: MsgConnectivity}
}

// begin transitions Idle/Success/Failed -> Pending and clears the previous
// answer and sources. It refuses a second in-flight submission.
func (c *Controller) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == models.StatusPending {
		return false
	}
	c.status = models.StatusPending
	c.answer = ""
	c.sources = nil
	return true
}

func (c *Controller) finish(out models.QueryOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = out.Status
	c.answer = out.Answer
	c.sources = out.Sources
}
