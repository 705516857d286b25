package rest

import (
	"context"
	"sync"
)

var _ reminderRunner = &reminderRunnerMock{}

type reminderRunnerMock struct {
	CheckOverdueFunc func(ctx context.Context) (int, error)

	calls struct {
		CheckOverdue []struct {
			Ctx context.Context
		}
	}
	lockCheckOverdue sync.RWMutex
}

func (mock *reminderRunnerMock) CheckOverdue(ctx context.Context) (int, error) {
	if mock.CheckOverdueFunc == nil {
		panic("reminderRunnerMock.CheckOverdueFunc: method is nil but reminderRunner.CheckOverdue was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCheckOverdue.Lock()
	mock.calls.CheckOverdue = append(mock.calls.CheckOverdue, callInfo)
	mock.lockCheckOverdue.Unlock()
	return mock.CheckOverdueFunc(ctx)
}

func (mock *reminderRunnerMock) CheckOverdueCalls() []struct {
	Ctx context.Context
} {
	mock.lockCheckOverdue.RLock()
	calls := mock.calls.CheckOverdue
	mock.lockCheckOverdue.RUnlock()
	return calls
}
