package review

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"sync"
	"time"
)

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc func(ctx context.Context, rl domain.ReviewLog) error

	HistoryFunc func(ctx context.Context, userID uuid.UUID, filter domain.ReviewHistoryFilter) ([]domain.ReviewLog, error)

	CountSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)

	DeleteByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rl  domain.ReviewLog
		}
		History []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.ReviewHistoryFilter
		}
		CountSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockHistory      sync.RWMutex
	lockCountSince   sync.RWMutex
	lockDeleteByUser sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, rl domain.ReviewLog) error {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rl  domain.ReviewLog
	}{Ctx: ctx, Rl: rl}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rl)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rl  domain.ReviewLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) History(ctx context.Context, userID uuid.UUID, filter domain.ReviewHistoryFilter) ([]domain.ReviewLog, error) {
	if mock.HistoryFunc == nil {
		panic("reviewLogRepoMock.HistoryFunc: method is nil but reviewLogRepo.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.ReviewHistoryFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, userID, filter)
}

func (mock *reviewLogRepoMock) HistoryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.ReviewHistoryFilter
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("reviewLogRepoMock.CountSinceFunc: method is nil but reviewLogRepo.CountSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, callInfo)
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, userID, since)
}

func (mock *reviewLogRepoMock) CountSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockCountSince.RLock()
	calls := mock.calls.CountSince
	mock.lockCountSince.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.DeleteByUserFunc == nil {
		panic("reviewLogRepoMock.DeleteByUserFunc: method is nil but reviewLogRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *reviewLogRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}
