package review

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"sync"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)

	CreateFunc func(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error)

	UpdateFunc func(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error)

	SetTimezoneFunc func(ctx context.Context, userID uuid.UUID, timezone string) error

	ResetFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   domain.UserProgress
		}
		Update []struct {
			Ctx context.Context
			P   domain.UserProgress
		}
		SetTimezone []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Timezone string
		}
		Reset []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet         sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockSetTimezone sync.RWMutex
	lockReset       sync.RWMutex
}

func (mock *progressRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	if mock.GetFunc == nil {
		panic("progressRepoMock.GetFunc: method is nil but progressRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *progressRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *progressRepoMock) Create(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error) {
	if mock.CreateFunc == nil {
		panic("progressRepoMock.CreateFunc: method is nil but progressRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.UserProgress
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *progressRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.UserProgress
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *progressRepoMock) Update(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error) {
	if mock.UpdateFunc == nil {
		panic("progressRepoMock.UpdateFunc: method is nil but progressRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.UserProgress
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *progressRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.UserProgress
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *progressRepoMock) SetTimezone(ctx context.Context, userID uuid.UUID, timezone string) error {
	if mock.SetTimezoneFunc == nil {
		panic("progressRepoMock.SetTimezoneFunc: method is nil but progressRepo.SetTimezone was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Timezone string
	}{Ctx: ctx, UserID: userID, Timezone: timezone}
	mock.lockSetTimezone.Lock()
	mock.calls.SetTimezone = append(mock.calls.SetTimezone, callInfo)
	mock.lockSetTimezone.Unlock()
	return mock.SetTimezoneFunc(ctx, userID, timezone)
}

func (mock *progressRepoMock) SetTimezoneCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Timezone string
} {
	mock.lockSetTimezone.RLock()
	calls := mock.calls.SetTimezone
	mock.lockSetTimezone.RUnlock()
	return calls
}

func (mock *progressRepoMock) Reset(ctx context.Context, userID uuid.UUID) error {
	if mock.ResetFunc == nil {
		panic("progressRepoMock.ResetFunc: method is nil but progressRepo.Reset was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx, userID)
}

func (mock *progressRepoMock) ResetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}
