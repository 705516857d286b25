package reminder

import (
	"context"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"sync"
	"time"
)

var _ reviewStateRepo = &reviewStateRepoMock{}

type reviewStateRepoMock struct {
	OverdueByUserFunc func(ctx context.Context, now time.Time) ([]domain.OverdueSummary, error)

	calls struct {
		OverdueByUser []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockOverdueByUser sync.RWMutex
}

func (mock *reviewStateRepoMock) OverdueByUser(ctx context.Context, now time.Time) ([]domain.OverdueSummary, error) {
	if mock.OverdueByUserFunc == nil {
		panic("reviewStateRepoMock.OverdueByUserFunc: method is nil but reviewStateRepo.OverdueByUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockOverdueByUser.Lock()
	mock.calls.OverdueByUser = append(mock.calls.OverdueByUser, callInfo)
	mock.lockOverdueByUser.Unlock()
	return mock.OverdueByUserFunc(ctx, now)
}

func (mock *reviewStateRepoMock) OverdueByUserCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockOverdueByUser.RLock()
	calls := mock.calls.OverdueByUser
	mock.lockOverdueByUser.RUnlock()
	return calls
}
