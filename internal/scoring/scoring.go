// Package scoring implements the percentage scoring rules shared by
// quizzes and case simulations, plus the grade bands shown on results
// screens.
package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks scoring calls whose inputs cannot produce a
// meaningful percentage, such as a quiz with zero questions.
var ErrInvalidInput = errors.New("invalid input")

// Grade is a qualitative band over a 0-100 score.
type Grade string

const (
	GradeExcellent        Grade = "Excellent"
	GradeGood             Grade = "Good"
	GradePass             Grade = "Pass"
	GradeNeedsImprovement Grade = "Needs Improvement"
)

// ScoreQuiz converts a correct count over a total into a rounded 0-100
// percentage. Total must be positive and correct must lie in [0, total].
func ScoreQuiz(correct, total int) (int, error) {
	if total <= 0 {
		return 0, fmt.Errorf("%w: total questions must be positive, got %d", ErrInvalidInput, total)
	}
	if correct < 0 || correct > total {
		return 0, fmt.Errorf("%w: correct count %d out of range [0, %d]", ErrInvalidInput, correct, total)
	}
	return int(math.Round(float64(correct) / float64(total) * 100)), nil
}

// ScoreCase scores a case simulation. Correct selections earn credit,
// incorrect selections cancel it one-for-one, and the result is clamped
// to [0, 100] so a reckless run floors at zero rather than going
// negative. totalCorrect is the number of correct actions available and
// must be positive.
func ScoreCase(correctSelected, incorrectSelected, totalCorrect int) (int, error) {
	if totalCorrect <= 0 {
		return 0, fmt.Errorf("%w: total correct actions must be positive, got %d", ErrInvalidInput, totalCorrect)
	}
	if correctSelected < 0 || correctSelected > totalCorrect {
		return 0, fmt.Errorf("%w: correct selections %d out of range [0, %d]", ErrInvalidInput, correctSelected, totalCorrect)
	}
	if incorrectSelected < 0 {
		return 0, fmt.Errorf("%w: incorrect selections must be non-negative, got %d", ErrInvalidInput, incorrectSelected)
	}

	raw := math.Round(float64(correctSelected-incorrectSelected) / float64(totalCorrect) * 100)
	switch {
	case raw < 0:
		return 0, nil
	case raw > 100:
		return 100, nil
	}
	return int(raw), nil
}

// Tier is the severity band behind a grade. Result screens key styling
// off the tier instead of re-deriving the score cutoffs.
type Tier int

const (
	TierStrong Tier = iota
	TierBorderline
	TierWeak
)

// GradeFor maps a 0-100 score onto its qualitative band.
func GradeFor(score int) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 80:
		return GradeGood
	case score >= 70:
		return GradePass
	default:
		return GradeNeedsImprovement
	}
}

// Tier returns the severity band for the grade.
func (g Grade) Tier() Tier {
	switch g {
	case GradeExcellent, GradeGood:
		return TierStrong
	case GradePass:
		return TierBorderline
	default:
		return TierWeak
	}
}

// Passed reports whether a score meets an assessment's pass threshold.
func Passed(score, passingScore int) bool {
	return score >= passingScore
}
