package syncsched

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dmitrijs2005/legalassist/internal/client/api"
	"github.com/dmitrijs2005/legalassist/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/legalassist/internal/client/storage"
	"github.com/dmitrijs2005/legalassist/internal/common"
	"github.com/dmitrijs2005/legalassist/internal/logging"
)

type fakeSyncer struct {
	calls int
	err   error
}

func (f *fakeSyncer) SyncCorpus(ctx context.Context) (*api.SyncResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &api.SyncResult{Success: true, ArticlesLoaded: 10}, nil
}

func setupScheduler(t *testing.T, syncer Syncer) (*Scheduler, metadata.Repository) {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv := metadata.NewSQLiteRepository(db)
	s := NewScheduler(kv, syncer, logging.NewZapLogger(zap.NewNop().Sugar()))
	return s, kv
}

func TestShouldSync(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name     string
		lastSync int64
		want     bool
	}{
		{"never synced", 0, true},
		{"negative garbage", -1, true},
		{"just synced", now.UnixMilli(), false},
		{"within window", now.UnixMilli() - 86_000_000, false},
		{"exactly at window boundary", now.UnixMilli() - 86_400_000, false},
		{"stale", now.UnixMilli() - 90_000_000, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldSync(now, tc.lastSync))
		})
	}
}

func TestRunIfDue_FirstStartSyncsAndRecordsTimestamp(t *testing.T) {
	syncer := &fakeSyncer{}
	s, kv := setupScheduler(t, syncer)
	ctx := context.Background()

	now := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return now }

	s.RunIfDue(ctx)

	require.Equal(t, 1, syncer.calls)
	raw, err := kv.Get(ctx, common.LastSyncKey)
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(now.UnixMilli(), 10), string(raw))
}

func TestRunIfDue_FreshTimestampSkipsNetworkCall(t *testing.T) {
	syncer := &fakeSyncer{}
	s, kv := setupScheduler(t, syncer)
	ctx := context.Background()

	now := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return now }
	require.NoError(t, kv.Set(ctx, common.LastSyncKey,
		[]byte(strconv.FormatInt(now.Add(-time.Hour).UnixMilli(), 10))))

	s.RunIfDue(ctx)

	assert.Zero(t, syncer.calls)
}

func TestRunIfDue_StaleTimestampSyncs(t *testing.T) {
	syncer := &fakeSyncer{}
	s, kv := setupScheduler(t, syncer)
	ctx := context.Background()

	now := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return now }
	require.NoError(t, kv.Set(ctx, common.LastSyncKey,
		[]byte(strconv.FormatInt(now.Add(-25*time.Hour).UnixMilli(), 10))))

	s.RunIfDue(ctx)

	assert.Equal(t, 1, syncer.calls)
}

func TestRunIfDue_FailureLeavesTimestampUntouched(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("boom")}
	s, kv := setupScheduler(t, syncer)
	ctx := context.Background()

	s.RunIfDue(ctx)

	raw, err := kv.Get(ctx, common.LastSyncKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	// второй "запуск приложения" снова пытается синхронизироваться
	s.RunIfDue(ctx)
	assert.Equal(t, 2, syncer.calls)
}

func TestRunIfDue_SuccessSuppressesImmediateRetry(t *testing.T) {
	syncer := &fakeSyncer{}
	s, _ := setupScheduler(t, syncer)
	ctx := context.Background()

	s.RunIfDue(ctx)
	s.RunIfDue(ctx)

	assert.Equal(t, 1, syncer.calls)
}

func TestRunIfDue_MalformedTimestampTreatedAsAbsent(t *testing.T) {
	syncer := &fakeSyncer{}
	s, kv := setupScheduler(t, syncer)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, common.LastSyncKey, []byte("yesterday")))

	s.RunIfDue(ctx)

	assert.Equal(t, 1, syncer.calls)
}
