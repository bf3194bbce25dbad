package catalog

import (
	"reflect"
	"testing"

	"quest-read-service/internal/models"
)

func TestChallengeTableCoverage(t *testing.T) {
	for _, task := range models.TaskComponents {
		for round := 1; round <= 2; round++ {
			for level := 0; level <= 3; level++ {
				ch, ok := Challenge(task, round, level)
				if !ok {
					t.Fatalf("no challenge for (%s, round %d, level %d)", task, round, level)
				}
				if ch.Prompt == "" {
					t.Errorf("(%s, %d, %d): empty prompt", task, round, level)
				}
				if len(ch.Options) < 2 {
					t.Errorf("(%s, %d, %d): want at least 2 options, got %d", task, round, level, len(ch.Options))
				}
				found := false
				for _, opt := range ch.Options {
					if opt == ch.CorrectAnswer {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("(%s, %d, %d): correct answer %q not among options %v", task, round, level, ch.CorrectAnswer, ch.Options)
				}

				switch task {
				case models.TaskImageColor:
					if ch.ImageURL == "" {
						t.Errorf("(%s, %d, %d): missing image url", task, round, level)
					}
				case models.TaskScramble:
					if ch.ScrambledWord == "" {
						t.Errorf("(%s, %d, %d): missing scrambled word", task, round, level)
					}
				case models.TaskAudioMismatch:
					if ch.AudioURL == "" || ch.ShownText == "" {
						t.Errorf("(%s, %d, %d): missing audio url or shown text", task, round, level)
					}
				}
			}
		}
	}
}

func TestChallengeSpotChecks(t *testing.T) {
	testCases := []struct {
		name    string
		task    string
		round   int
		level   int
		prompt  string
		correct string
	}{
		{"easiest banana", models.TaskImageColor, 1, 0, "Tap the color of the banana.", "Yellow"},
		{"hardest banana", models.TaskImageColor, 1, 3, "Pick the most accurate color for the banana peel.", "Yellow"},
		{"easiest apple", models.TaskImageColor, 2, 0, "Tap the color of the apple.", "Green"},
		{"easiest scramble", models.TaskScramble, 1, 0, "Fix the scrambled word.", "CAT"},
		{"hardest scramble round two", models.TaskScramble, 2, 3, "Rebuild the correctly spelled word.", "TRIANGLE"},
		{"audio mismatch at level two", models.TaskAudioMismatch, 2, 2, "Listen carefully. Does the audio match the shown text?", "No"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ch, ok := Challenge(tc.task, tc.round, tc.level)
			if !ok {
				t.Fatalf("no challenge for (%s, %d, %d)", tc.task, tc.round, tc.level)
			}
			if ch.Prompt != tc.prompt {
				t.Errorf("prompt = %q, want %q", ch.Prompt, tc.prompt)
			}
			if ch.CorrectAnswer != tc.correct {
				t.Errorf("correct answer = %q, want %q", ch.CorrectAnswer, tc.correct)
			}
		})
	}
}

func TestChallengeMediaByRound(t *testing.T) {
	first, _ := Challenge(models.TaskAudioMismatch, 1, 0)
	second, _ := Challenge(models.TaskAudioMismatch, 2, 0)
	if first.AudioURL == second.AudioURL {
		t.Error("round 1 and round 2 should use different audio clips")
	}
	scrambleOne, _ := Challenge(models.TaskScramble, 1, 2)
	if scrambleOne.ScrambledWord != "NPELIC" || scrambleOne.CorrectAnswer != "PENCIL" {
		t.Errorf("unexpected round 1 level 2 scramble: %+v", scrambleOne)
	}
}

func TestChallengeUnknownCoordinates(t *testing.T) {
	testCases := []struct {
		name  string
		task  string
		round int
		level int
	}{
		{"unknown task", "reading_speed", 1, 0},
		{"round zero", models.TaskScramble, 0, 0},
		{"round beyond table", models.TaskScramble, 3, 0},
		{"negative level", models.TaskImageColor, 1, -1},
		{"level beyond table", models.TaskAudioMismatch, 1, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Challenge(tc.task, tc.round, tc.level); ok {
				t.Errorf("Challenge(%q, %d, %d) unexpectedly resolved", tc.task, tc.round, tc.level)
			}
		})
	}
}

func TestForRoundDeterministic(t *testing.T) {
	first := ForRound(1, 2)
	second := ForRound(1, 2)
	if len(first) != len(models.TaskComponents) {
		t.Fatalf("want %d challenges, got %d", len(models.TaskComponents), len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("ForRound should be deterministic for the same coordinates")
	}
}
