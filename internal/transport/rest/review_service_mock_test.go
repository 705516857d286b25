package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/review"
	"sync"
)

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	SubmitReviewFunc func(ctx context.Context, input review.SubmitReviewInput) (*review.ReviewOutcome, error)

	GetLessonReviewFunc func(ctx context.Context, lessonID uuid.UUID) (*domain.ReviewState, error)

	ListReviewsFunc func(ctx context.Context) ([]domain.ReviewState, error)

	GetDueReviewsFunc func(ctx context.Context, input review.DueReviewsInput) ([]domain.ReviewState, error)

	GetReviewHistoryFunc func(ctx context.Context, input review.HistoryInput) ([]domain.ReviewLog, error)

	calls struct {
		SubmitReview []struct {
			Ctx   context.Context
			Input review.SubmitReviewInput
		}
		GetLessonReview []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		ListReviews []struct {
			Ctx context.Context
		}
		GetDueReviews []struct {
			Ctx   context.Context
			Input review.DueReviewsInput
		}
		GetReviewHistory []struct {
			Ctx   context.Context
			Input review.HistoryInput
		}
	}
	lockSubmitReview     sync.RWMutex
	lockGetLessonReview  sync.RWMutex
	lockListReviews      sync.RWMutex
	lockGetDueReviews    sync.RWMutex
	lockGetReviewHistory sync.RWMutex
}

func (mock *reviewServiceMock) SubmitReview(ctx context.Context, input review.SubmitReviewInput) (*review.ReviewOutcome, error) {
	if mock.SubmitReviewFunc == nil {
		panic("reviewServiceMock.SubmitReviewFunc: method is nil but reviewService.SubmitReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.SubmitReviewInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitReview.Lock()
	mock.calls.SubmitReview = append(mock.calls.SubmitReview, callInfo)
	mock.lockSubmitReview.Unlock()
	return mock.SubmitReviewFunc(ctx, input)
}

func (mock *reviewServiceMock) SubmitReviewCalls() []struct {
	Ctx   context.Context
	Input review.SubmitReviewInput
} {
	mock.lockSubmitReview.RLock()
	calls := mock.calls.SubmitReview
	mock.lockSubmitReview.RUnlock()
	return calls
}

func (mock *reviewServiceMock) GetLessonReview(ctx context.Context, lessonID uuid.UUID) (*domain.ReviewState, error) {
	if mock.GetLessonReviewFunc == nil {
		panic("reviewServiceMock.GetLessonReviewFunc: method is nil but reviewService.GetLessonReview was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockGetLessonReview.Lock()
	mock.calls.GetLessonReview = append(mock.calls.GetLessonReview, callInfo)
	mock.lockGetLessonReview.Unlock()
	return mock.GetLessonReviewFunc(ctx, lessonID)
}

func (mock *reviewServiceMock) GetLessonReviewCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockGetLessonReview.RLock()
	calls := mock.calls.GetLessonReview
	mock.lockGetLessonReview.RUnlock()
	return calls
}

func (mock *reviewServiceMock) ListReviews(ctx context.Context) ([]domain.ReviewState, error) {
	if mock.ListReviewsFunc == nil {
		panic("reviewServiceMock.ListReviewsFunc: method is nil but reviewService.ListReviews was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListReviews.Lock()
	mock.calls.ListReviews = append(mock.calls.ListReviews, callInfo)
	mock.lockListReviews.Unlock()
	return mock.ListReviewsFunc(ctx)
}

func (mock *reviewServiceMock) ListReviewsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListReviews.RLock()
	calls := mock.calls.ListReviews
	mock.lockListReviews.RUnlock()
	return calls
}

func (mock *reviewServiceMock) GetDueReviews(ctx context.Context, input review.DueReviewsInput) ([]domain.ReviewState, error) {
	if mock.GetDueReviewsFunc == nil {
		panic("reviewServiceMock.GetDueReviewsFunc: method is nil but reviewService.GetDueReviews was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.DueReviewsInput
	}{Ctx: ctx, Input: input}
	mock.lockGetDueReviews.Lock()
	mock.calls.GetDueReviews = append(mock.calls.GetDueReviews, callInfo)
	mock.lockGetDueReviews.Unlock()
	return mock.GetDueReviewsFunc(ctx, input)
}

func (mock *reviewServiceMock) GetDueReviewsCalls() []struct {
	Ctx   context.Context
	Input review.DueReviewsInput
} {
	mock.lockGetDueReviews.RLock()
	calls := mock.calls.GetDueReviews
	mock.lockGetDueReviews.RUnlock()
	return calls
}

func (mock *reviewServiceMock) GetReviewHistory(ctx context.Context, input review.HistoryInput) ([]domain.ReviewLog, error) {
	if mock.GetReviewHistoryFunc == nil {
		panic("reviewServiceMock.GetReviewHistoryFunc: method is nil but reviewService.GetReviewHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.HistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockGetReviewHistory.Lock()
	mock.calls.GetReviewHistory = append(mock.calls.GetReviewHistory, callInfo)
	mock.lockGetReviewHistory.Unlock()
	return mock.GetReviewHistoryFunc(ctx, input)
}

func (mock *reviewServiceMock) GetReviewHistoryCalls() []struct {
	Ctx   context.Context
	Input review.HistoryInput
} {
	mock.lockGetReviewHistory.RLock()
	calls := mock.calls.GetReviewHistory
	mock.lockGetReviewHistory.RUnlock()
	return calls
}
