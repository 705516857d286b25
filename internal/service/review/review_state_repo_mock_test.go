package review

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"sync"
	"time"
)

var _ reviewStateRepo = &reviewStateRepoMock{}

type reviewStateRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID, lessonID uuid.UUID) (*domain.ReviewState, error)

	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ReviewState, error)

	ListDueFunc func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewState, error)

	CountDueFunc func(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)

	CreateFunc func(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error)

	UpdateFunc func(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error)

	DeleteByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			LessonID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
			Limit  int
		}
		CountDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
		}
		Create []struct {
			Ctx context.Context
			Rs  domain.ReviewState
		}
		Update []struct {
			Ctx context.Context
			Rs  domain.ReviewState
		}
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet          sync.RWMutex
	lockListByUser   sync.RWMutex
	lockListDue      sync.RWMutex
	lockCountDue     sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDeleteByUser sync.RWMutex
}

func (mock *reviewStateRepoMock) Get(ctx context.Context, userID uuid.UUID, lessonID uuid.UUID) (*domain.ReviewState, error) {
	if mock.GetFunc == nil {
		panic("reviewStateRepoMock.GetFunc: method is nil but reviewStateRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		LessonID uuid.UUID
	}{Ctx: ctx, UserID: userID, LessonID: lessonID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, lessonID)
}

func (mock *reviewStateRepoMock) GetCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	LessonID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reviewStateRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReviewState, error) {
	if mock.ListByUserFunc == nil {
		panic("reviewStateRepoMock.ListByUserFunc: method is nil but reviewStateRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *reviewStateRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *reviewStateRepoMock) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.ReviewState, error) {
	if mock.ListDueFunc == nil {
		panic("reviewStateRepoMock.ListDueFunc: method is nil but reviewStateRepo.ListDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, Now: now, Limit: limit}
	mock.lockListDue.Lock()
	mock.calls.ListDue = append(mock.calls.ListDue, callInfo)
	mock.lockListDue.Unlock()
	return mock.ListDueFunc(ctx, userID, now, limit)
}

func (mock *reviewStateRepoMock) ListDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
	Limit  int
} {
	mock.lockListDue.RLock()
	calls := mock.calls.ListDue
	mock.lockListDue.RUnlock()
	return calls
}

func (mock *reviewStateRepoMock) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	if mock.CountDueFunc == nil {
		panic("reviewStateRepoMock.CountDueFunc: method is nil but reviewStateRepo.CountDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
	}{Ctx: ctx, UserID: userID, Now: now}
	mock.lockCountDue.Lock()
	mock.calls.CountDue = append(mock.calls.CountDue, callInfo)
	mock.lockCountDue.Unlock()
	return mock.CountDueFunc(ctx, userID, now)
}

func (mock *reviewStateRepoMock) CountDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
} {
	mock.lockCountDue.RLock()
	calls := mock.calls.CountDue
	mock.lockCountDue.RUnlock()
	return calls
}

func (mock *reviewStateRepoMock) Create(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error) {
	if mock.CreateFunc == nil {
		panic("reviewStateRepoMock.CreateFunc: method is nil but reviewStateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rs  domain.ReviewState
	}{Ctx: ctx, Rs: rs}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rs)
}

func (mock *reviewStateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rs  domain.ReviewState
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewStateRepoMock) Update(ctx context.Context, rs domain.ReviewState) (*domain.ReviewState, error) {
	if mock.UpdateFunc == nil {
		panic("reviewStateRepoMock.UpdateFunc: method is nil but reviewStateRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rs  domain.ReviewState
	}{Ctx: ctx, Rs: rs}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rs)
}

func (mock *reviewStateRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Rs  domain.ReviewState
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *reviewStateRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.DeleteByUserFunc == nil {
		panic("reviewStateRepoMock.DeleteByUserFunc: method is nil but reviewStateRepo.DeleteByUser was just called")
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

func (mock *reviewStateRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}
