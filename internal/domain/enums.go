package domain

import "strings"

// CardState represents the memory-model lifecycle stage of a reviewed lesson.
type CardState string

const (
	CardStateNew        CardState = "NEW"
	CardStateLearning   CardState = "LEARNING"
	CardStateReview     CardState = "REVIEW"
	CardStateRelearning CardState = "RELEARNING"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateNew, CardStateLearning, CardStateReview, CardStateRelearning:
		return true
	}
	return false
}

// LessonCategory is the free-form lesson category. Known values drive XP rewards.
type LessonCategory string

const (
	LessonCategoryGrammar    LessonCategory = "grammar"
	LessonCategoryPractice   LessonCategory = "practice"
	LessonCategoryFlashcards LessonCategory = "flashcards"
)

// NormalizeCategory lower-cases and trims a raw category string.
func NormalizeCategory(raw string) LessonCategory {
	return LessonCategory(strings.ToLower(strings.TrimSpace(raw)))
}

func (c LessonCategory) String() string { return string(c) }

// IsKnown reports whether the category is one of the built-in lesson categories.
func (c LessonCategory) IsKnown() bool {
	switch c {
	case LessonCategoryGrammar, LessonCategoryPractice, LessonCategoryFlashcards:
		return true
	}
	return false
}

// UserRole represents the authorization role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }
