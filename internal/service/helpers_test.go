package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupEventRepo(t *testing.T) repository.EventRepo {
	t.Helper()
	return repository.NewSQLiteEventRepo(testutil.NewTestDB(t))
}

func seedLog(t *testing.T, events repository.EventRepo, log domain.EventLog) {
	t.Helper()
	ctx := context.Background()
	for i := range log {
		require.NoError(t, events.Create(ctx, &log[i]))
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}
