package review

import (
	"math"

	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

// Reward amounts granted per review.
const (
	RewardGrammar    = 20
	RewardPractice   = 15
	RewardFlashcards = 10
	RewardDefault    = 10
	RewardRepeat     = 5
)

var firstCompletionRewards = map[domain.LessonCategory]int{
	domain.LessonCategoryGrammar:    RewardGrammar,
	domain.LessonCategoryPractice:   RewardPractice,
	domain.LessonCategoryFlashcards: RewardFlashcards,
}

// XPRequiredForLevel returns the XP needed to advance from level to level+1:
// floor(100 * level^1.5).
func XPRequiredForLevel(level int) int {
	return int(100 * math.Pow(float64(level), 1.5))
}

// AddXP adds xp and carries any overflow into level-ups, possibly several at once.
// The returned xp is always below XPRequiredForLevel(newLevel).
func AddXP(currentXP, currentLevel, xpToAdd int) (newXP, newLevel int, leveledUp bool) {
	newXP = currentXP + xpToAdd
	newLevel = currentLevel

	for {
		needed := XPRequiredForLevel(newLevel)
		if newXP < needed {
			break
		}
		newXP -= needed
		newLevel++
		leveledUp = true
	}

	return newXP, newLevel, leveledUp
}

// XPReward returns the XP granted for reviewing a lesson. Repeat completions
// get a flat amount regardless of category.
func XPReward(category domain.LessonCategory, alreadyCompleted bool) int {
	if alreadyCompleted {
		return RewardRepeat
	}
	if xp, ok := firstCompletionRewards[domain.NormalizeCategory(string(category))]; ok {
		return xp
	}
	return RewardDefault
}
