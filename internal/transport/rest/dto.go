package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
	"github.com/heartmarshall/kotoba-backend/internal/service/review"
)

type submitReviewRequest struct {
	OverallPerformance *int `json:"overallPerformance"`
}

type reviewStateResponse struct {
	LessonID       uuid.UUID  `json:"lessonId"`
	State          string     `json:"state"`
	Step           int        `json:"step"`
	Stability      float64    `json:"stability"`
	Difficulty     float64    `json:"difficulty"`
	Retrievability float64    `json:"retrievability"`
	Due            time.Time  `json:"due"`
	IsDue          bool       `json:"isDue"`
	LastReview     *time.Time `json:"lastReview,omitempty"`
	Reps           int        `json:"reps"`
	Lapses         int        `json:"lapses"`
}

type reviewOutcomeResponse struct {
	XPGained        int                 `json:"xpGained"`
	NewXP           int                 `json:"newXp"`
	NewLevel        int                 `json:"newLevel"`
	LeveledUp       bool                `json:"leveledUp"`
	CurrentStreak   int                 `json:"currentStreak"`
	FirstCompletion bool                `json:"firstCompletion"`
	NextReview      time.Time           `json:"nextReview"`
	Review          reviewStateResponse `json:"review"`
}

type reviewLogResponse struct {
	ID         uuid.UUID `json:"id"`
	LessonID   uuid.UUID `json:"lessonId"`
	Rating     int       `json:"rating"`
	ReviewedAt time.Time `json:"reviewedAt"`
}

type progressResponse struct {
	Timezone         string      `json:"timezone"`
	CurrentStreak    int         `json:"currentStreak"`
	StreakActive     bool        `json:"streakActive"`
	StreakExpiresAt  *time.Time  `json:"streakExpiresAt,omitempty"`
	LastActivityDate *time.Time  `json:"lastActivityDate,omitempty"`
	XP               int         `json:"xp"`
	Level            int         `json:"level"`
	XPRequired       int         `json:"xpRequired"`
	XPToNextLevel    int         `json:"xpToNextLevel"`
	CompletedLessons []uuid.UUID `json:"completedLessons"`
	ReviewsToday     int         `json:"reviewsToday"`
	DueCount         int         `json:"dueCount"`
}

type setTimezoneRequest struct {
	Timezone string `json:"timezone"`
}

// toReviewStateResponse reports retrievability and due-ness as of now.
func toReviewStateResponse(s domain.ReviewState, now time.Time) reviewStateResponse {
	return reviewStateResponse{
		LessonID:       s.LessonID,
		State:          s.State.String(),
		Step:           s.Step,
		Stability:      s.Stability,
		Difficulty:     s.Difficulty,
		Retrievability: review.Retrievability(s, now),
		Due:            s.Due,
		IsDue:          s.IsDue(now),
		LastReview:     s.LastReview,
		Reps:           s.Reps,
		Lapses:         s.Lapses,
	}
}

func toReviewStateResponses(states []domain.ReviewState, now time.Time) []reviewStateResponse {
	out := make([]reviewStateResponse, 0, len(states))
	for _, s := range states {
		out = append(out, toReviewStateResponse(s, now))
	}
	return out
}

func toReviewOutcomeResponse(o *review.ReviewOutcome, now time.Time) reviewOutcomeResponse {
	return reviewOutcomeResponse{
		XPGained:        o.XPGained,
		NewXP:           o.NewXP,
		NewLevel:        o.NewLevel,
		LeveledUp:       o.LeveledUp,
		CurrentStreak:   o.CurrentStreak,
		FirstCompletion: o.FirstCompletion,
		NextReview:      o.NextReview,
		Review:          toReviewStateResponse(o.State, now),
	}
}

func toReviewLogResponses(logs []domain.ReviewLog) []reviewLogResponse {
	out := make([]reviewLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, reviewLogResponse{
			ID:         l.ID,
			LessonID:   l.LessonID,
			Rating:     l.Rating,
			ReviewedAt: l.ReviewedAt,
		})
	}
	return out
}

func toProgressResponse(s *review.ProgressSummary) progressResponse {
	completed := s.Progress.CompletedLessons
	if completed == nil {
		completed = []uuid.UUID{}
	}
	return progressResponse{
		Timezone:         s.Progress.Timezone,
		CurrentStreak:    s.Progress.CurrentStreak,
		StreakActive:     s.StreakActive,
		StreakExpiresAt:  s.StreakExpiresAt,
		LastActivityDate: s.Progress.LastActivityDate,
		XP:               s.Progress.XP,
		Level:            s.Progress.Level,
		XPRequired:       s.XPRequired,
		XPToNextLevel:    s.XPToNextLevel,
		CompletedLessons: completed,
		ReviewsToday:     s.ReviewsToday,
		DueCount:         s.DueCount,
	}
}
