package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/memberadmin/internal/members"
	"github.com/five82/memberadmin/internal/roster"
	"github.com/five82/memberadmin/internal/state"
)

// LoadMembers performs the single startup fetch and installs the result in
// store. A failure is recorded on the store and returned; nothing retries it.
func LoadMembers(ctx context.Context, store *state.Store, fetcher members.Fetcher, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	ds, err := fetcher.FetchMembers(ctx)
	if err != nil {
		store.Load(roster.Dataset{}, err)
		log.Error("member load failed", zap.Error(err))
		return err
	}

	if ds.Skipped > 0 {
		log.Warn("dropped members without a usable id", zap.Int("skipped", ds.Skipped))
	}
	store.Load(ds, nil)
	log.Info("members loaded",
		zap.Int("count", len(ds.Records)),
		zap.Strings("columns", ds.Schema.Fields),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// logChanges returns a store subscriber that traces session changes at
// debug level.
func logChanges(log *zap.Logger) func(state.Snapshot) {
	return func(snap state.Snapshot) {
		st := snap.Roster
		log.Debug("session updated",
			zap.Int("records", st.Len()),
			zap.Int("filtered", len(st.Filtered())),
			zap.Int("selected", st.SelectedCount()),
			zap.String("search", st.Term()),
			zap.Int("page", st.Page()),
		)
	}
}
