// Package syncsched decides once per application start whether the remote
// legal-article corpus is stale and, if so, refreshes it in the background.
// Sync is best-effort maintenance: failures are logged, never surfaced to
// the user, and the recorded timestamp advances only on success so the next
// start retries.
package syncsched

import (
	"context"
	"strconv"
	"time"

	"github.com/dmitrijs2005/legalassist/internal/client/api"
	"github.com/dmitrijs2005/legalassist/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/legalassist/internal/common"
	"github.com/dmitrijs2005/legalassist/internal/logging"
)

// StalenessWindow is how long a successful sync stays fresh.
const StalenessWindow = 24 * time.Hour

// Syncer triggers a remote corpus refresh.
type Syncer interface {
	SyncCorpus(ctx context.Context) (*api.SyncResult, error)
}

// ShouldSync reports whether a refresh is due. lastSync is the recorded
// epoch-millisecond timestamp of the last successful sync; zero or negative
// means "never synced".
func ShouldSync(now time.Time, lastSync int64) bool {
	if lastSync <= 0 {
		return true
	}
	return now.UnixMilli()-lastSync > StalenessWindow.Milliseconds()
}

type Scheduler struct {
	kv     metadata.Repository
	client Syncer
	log    logging.Logger
	now    func() time.Time
}

func NewScheduler(kv metadata.Repository, client Syncer, log logging.Logger) *Scheduler {
	return &Scheduler{kv: kv, client: client, log: log, now: time.Now}
}

// Start dispatches RunIfDue on its own goroutine. The startup path never
// waits for it.
func (s *Scheduler) Start(ctx context.Context) {
	go s.RunIfDue(ctx)
}

// RunIfDue reads the recorded timestamp and refreshes the corpus when it is
// absent, malformed or older than the staleness window. At most one network
// call and one store write happen per invocation.
func (s *Scheduler) RunIfDue(ctx context.Context) {
	if !ShouldSync(s.now(), s.lastSync(ctx)) {
		return
	}
	_ = s.Sync(ctx)
}

// Sync refreshes the corpus unconditionally and records the current time on
// success. Used by RunIfDue and by the manual REPL command.
func (s *Scheduler) Sync(ctx context.Context) error {
	res, err := s.client.SyncCorpus(ctx)
	if err != nil {
		s.log.Warn(ctx, "corpus sync failed, will retry on next start", "error", err)
		return err
	}

	stamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := s.kv.Set(ctx, common.LastSyncKey, []byte(stamp)); err != nil {
		s.log.Error(ctx, "failed to record sync timestamp", "error", err)
		return err
	}

	s.log.Info(ctx, "corpus synchronized", "articles_loaded", res.ArticlesLoaded)
	return nil
}

func (s *Scheduler) lastSync(ctx context.Context) int64 {
	raw, err := s.kv.Get(ctx, common.LastSyncKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read sync timestamp", "error", err)
		return 0
	}
	if raw == nil {
		return 0
	}

	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		s.log.Warn(ctx, "discarding malformed sync timestamp", "value", string(raw))
		return 0
	}
	return v
}
