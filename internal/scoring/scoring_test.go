package scoring

import (
	"errors"
	"testing"
)

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"three of four", 3, 4, 75},
		{"all correct", 4, 4, 100},
		{"none correct", 0, 4, 0},
		{"one of three rounds", 1, 3, 33},
		{"two of three rounds", 2, 3, 67},
		{"one of one", 1, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreQuiz(tt.correct, tt.total)
			if err != nil {
				t.Fatalf("ScoreQuiz(%d, %d) error: %v", tt.correct, tt.total, err)
			}
			if got != tt.want {
				t.Errorf("ScoreQuiz(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestScoreQuizInvalid(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
	}{
		{"zero total", 0, 0},
		{"negative total", 3, -1},
		{"negative correct", -1, 4},
		{"correct exceeds total", 5, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScoreQuiz(tt.correct, tt.total); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ScoreQuiz(%d, %d) error = %v, want ErrInvalidInput", tt.correct, tt.total, err)
			}
		})
	}
}

func TestScoreCase(t *testing.T) {
	tests := []struct {
		name              string
		correctSelected   int
		incorrectSelected int
		totalCorrect      int
		want              int
	}{
		{"four correct one incorrect of five", 4, 1, 5, 60},
		{"perfect run", 5, 0, 5, 100},
		{"nothing selected", 0, 0, 5, 0},
		{"incorrect outweighs correct clamps to zero", 1, 4, 5, 0},
		{"all incorrect clamps to zero", 0, 3, 4, 0},
		{"two of three no mistakes", 2, 0, 3, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreCase(tt.correctSelected, tt.incorrectSelected, tt.totalCorrect)
			if err != nil {
				t.Fatalf("ScoreCase(%d, %d, %d) error: %v",
					tt.correctSelected, tt.incorrectSelected, tt.totalCorrect, err)
			}
			if got != tt.want {
				t.Errorf("ScoreCase(%d, %d, %d) = %d, want %d",
					tt.correctSelected, tt.incorrectSelected, tt.totalCorrect, got, tt.want)
			}
		})
	}
}

func TestScoreCaseMonotonic(t *testing.T) {
	// Adding a correct selection never lowers the score; adding an
	// incorrect selection never raises it.
	const totalCorrect = 5
	prev := -1
	for correct := 0; correct <= totalCorrect; correct++ {
		got, err := ScoreCase(correct, 1, totalCorrect)
		if err != nil {
			t.Fatalf("ScoreCase(%d, 1, %d) error: %v", correct, totalCorrect, err)
		}
		if got < prev {
			t.Errorf("score dropped from %d to %d when correct selections rose to %d", prev, got, correct)
		}
		prev = got
	}

	prev = 101
	for incorrect := 0; incorrect <= 6; incorrect++ {
		got, err := ScoreCase(3, incorrect, totalCorrect)
		if err != nil {
			t.Fatalf("ScoreCase(3, %d, %d) error: %v", incorrect, totalCorrect, err)
		}
		if got > prev {
			t.Errorf("score rose from %d to %d when incorrect selections rose to %d", prev, got, incorrect)
		}
		prev = got
	}
}

func TestScoreCaseInvalid(t *testing.T) {
	tests := []struct {
		name              string
		correctSelected   int
		incorrectSelected int
		totalCorrect      int
	}{
		{"zero total correct", 0, 0, 0},
		{"negative total correct", 0, 0, -2},
		{"correct selected exceeds total", 6, 0, 5},
		{"negative correct selected", -1, 0, 5},
		{"negative incorrect selected", 2, -1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScoreCase(tt.correctSelected, tt.incorrectSelected, tt.totalCorrect)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ScoreCase(%d, %d, %d) error = %v, want ErrInvalidInput",
					tt.correctSelected, tt.incorrectSelected, tt.totalCorrect, err)
			}
		})
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeExcellent},
		{90, GradeExcellent},
		{89, GradeGood},
		{80, GradeGood},
		{79, GradePass},
		{70, GradePass},
		{69, GradeNeedsImprovement},
		{0, GradeNeedsImprovement},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestGradeTier(t *testing.T) {
	tests := []struct {
		grade Grade
		want  Tier
	}{
		{GradeExcellent, TierStrong},
		{GradeGood, TierStrong},
		{GradePass, TierBorderline},
		{GradeNeedsImprovement, TierWeak},
	}
	for _, tt := range tests {
		if got := tt.grade.Tier(); got != tt.want {
			t.Errorf("%q.Tier() = %d, want %d", tt.grade, got, tt.want)
		}
	}
}

func TestPassed(t *testing.T) {
	if !Passed(70, 70) {
		t.Error("Passed(70, 70) = false, want true")
	}
	if Passed(69, 70) {
		t.Error("Passed(69, 70) = true, want false")
	}
}
