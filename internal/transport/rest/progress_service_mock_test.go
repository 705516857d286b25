package rest

import (
	"context"
	"github.com/heartmarshall/kotoba-backend/internal/service/review"
	"sync"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	GetProgressFunc func(ctx context.Context) (*review.ProgressSummary, error)

	SetTimezoneFunc func(ctx context.Context, input review.SetTimezoneInput) error

	ResetProgressFunc func(ctx context.Context) error

	calls struct {
		GetProgress []struct {
			Ctx context.Context
		}
		SetTimezone []struct {
			Ctx   context.Context
			Input review.SetTimezoneInput
		}
		ResetProgress []struct {
			Ctx context.Context
		}
	}
	lockGetProgress   sync.RWMutex
	lockSetTimezone   sync.RWMutex
	lockResetProgress sync.RWMutex
}

func (mock *progressServiceMock) GetProgress(ctx context.Context) (*review.ProgressSummary, error) {
	if mock.GetProgressFunc == nil {
		panic("progressServiceMock.GetProgressFunc: method is nil but progressService.GetProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx)
}

func (mock *progressServiceMock) GetProgressCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) SetTimezone(ctx context.Context, input review.SetTimezoneInput) error {
	if mock.SetTimezoneFunc == nil {
		panic("progressServiceMock.SetTimezoneFunc: method is nil but progressService.SetTimezone was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.SetTimezoneInput
	}{Ctx: ctx, Input: input}
	mock.lockSetTimezone.Lock()
	mock.calls.SetTimezone = append(mock.calls.SetTimezone, callInfo)
	mock.lockSetTimezone.Unlock()
	return mock.SetTimezoneFunc(ctx, input)
}

func (mock *progressServiceMock) SetTimezoneCalls() []struct {
	Ctx   context.Context
	Input review.SetTimezoneInput
} {
	mock.lockSetTimezone.RLock()
	calls := mock.calls.SetTimezone
	mock.lockSetTimezone.RUnlock()
	return calls
}

func (mock *progressServiceMock) ResetProgress(ctx context.Context) error {
	if mock.ResetProgressFunc == nil {
		panic("progressServiceMock.ResetProgressFunc: method is nil but progressService.ResetProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockResetProgress.Lock()
	mock.calls.ResetProgress = append(mock.calls.ResetProgress, callInfo)
	mock.lockResetProgress.Unlock()
	return mock.ResetProgressFunc(ctx)
}

func (mock *progressServiceMock) ResetProgressCalls() []struct {
	Ctx context.Context
} {
	mock.lockResetProgress.RLock()
	calls := mock.calls.ResetProgress
	mock.lockResetProgress.RUnlock()
	return calls
}
