package redis

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"sync"
)

var _ lessonSource = &lessonSourceMock{}

type lessonSourceMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *lessonSourceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	if mock.GetByIDFunc == nil {
		panic("lessonSourceMock.GetByIDFunc: method is nil but lessonSource.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *lessonSourceMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
