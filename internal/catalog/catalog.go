// Package catalog holds the fixed challenge content served to clients.
// Content is data, not logic: each task type has a table indexed by
// (round number, difficulty level) and lookups are pure and
// deterministic.
package catalog

import "quest-read-service/internal/models"

const (
	bananaImageURL = "https://images.unsplash.com/photo-1603833665858-e61d17a86224"
	appleImageURL  = "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce"
	rainAudioURL1  = "https://www.soundjay.com/nature/sounds/rain-01.mp3"
	rainAudioURL2  = "https://www.soundjay.com/nature/sounds/rain-02.mp3"
)

// Tables are indexed [roundNumber-1][level].

var imageColorTable = [2][4]models.Challenge{
	{
		{
			Prompt:        "Tap the color of the banana.",
			ImageURL:      bananaImageURL,
			Options:       []string{"Yellow", "Red", "Blue", "Green"},
			CorrectAnswer: "Yellow",
		},
		{
			Prompt:        "What color is the banana?",
			ImageURL:      bananaImageURL,
			Options:       []string{"Yellow", "Orange", "Green", "Purple"},
			CorrectAnswer: "Yellow",
		},
		{
			Prompt:        "Choose the best color label for the banana.",
			ImageURL:      bananaImageURL,
			Options:       []string{"Yellow", "Gold", "Orange", "Green"},
			CorrectAnswer: "Yellow",
		},
		{
			Prompt:        "Pick the most accurate color for the banana peel.",
			ImageURL:      bananaImageURL,
			Options:       []string{"Yellow", "Amber", "Mustard", "Orange"},
			CorrectAnswer: "Yellow",
		},
	},
	{
		{
			Prompt:        "Tap the color of the apple.",
			ImageURL:      appleImageURL,
			Options:       []string{"Green", "Red", "Blue", "Black"},
			CorrectAnswer: "Green",
		},
		{
			Prompt:        "What color is the apple shown?",
			ImageURL:      appleImageURL,
			Options:       []string{"Green", "Yellow", "Red", "Purple"},
			CorrectAnswer: "Green",
		},
		{
			Prompt:        "Choose the best color label for the apple.",
			ImageURL:      appleImageURL,
			Options:       []string{"Green", "Lime", "Yellow", "Brown"},
			CorrectAnswer: "Green",
		},
		{
			Prompt:        "Pick the most accurate color for this apple.",
			ImageURL:      appleImageURL,
			Options:       []string{"Green", "Olive", "Teal", "Brown"},
			CorrectAnswer: "Green",
		},
	},
}

var scrambleTable = [2][4]models.Challenge{
	{
		{
			Prompt:        "Fix the scrambled word.",
			ScrambledWord: "CTA",
			Options:       []string{"CAT", "ACT", "TAC", "CTA"},
			CorrectAnswer: "CAT",
		},
		{
			Prompt:        "Fix the scrambled word.",
			ScrambledWord: "RIBD",
			Options:       []string{"BIRD", "BRID", "DRIB", "BIDR"},
			CorrectAnswer: "BIRD",
		},
		{
			Prompt:        "Rebuild the correctly spelled word.",
			ScrambledWord: "NPELIC",
			Options:       []string{"PENCIL", "PINECL", "CLIPEN", "PENCLI"},
			CorrectAnswer: "PENCIL",
		},
		{
			Prompt:        "Rebuild the correctly spelled word.",
			ScrambledWord: "LEPHATNE",
			Options:       []string{"ELEPHANT", "ELPHANTE", "ELEPHTAN", "ELPHATEN"},
			CorrectAnswer: "ELEPHANT",
		},
	},
	{
		{
			Prompt:        "Fix the scrambled word.",
			ScrambledWord: "DOG",
			Options:       []string{"DOG", "GOD", "ODG", "DGO"},
			CorrectAnswer: "DOG",
		},
		{
			Prompt:        "Fix the scrambled word.",
			ScrambledWord: "PANEL",
			Options:       []string{"PLANE", "PANEL", "PENAL", "PLENA"},
			CorrectAnswer: "PLANE",
		},
		{
			Prompt:        "Rebuild the correctly spelled word.",
			ScrambledWord: "LOCHSO",
			Options:       []string{"SCHOOL", "CHOOLS", "SOCHOL", "CHSLOO"},
			CorrectAnswer: "SCHOOL",
		},
		{
			Prompt:        "Rebuild the correctly spelled word.",
			ScrambledWord: "GNLAITER",
			Options:       []string{"TRIANGLE", "INTEGRAL", "RELATING", "TANGLIER"},
			CorrectAnswer: "TRIANGLE",
		},
	},
}

var audioMismatchTable = [2][4]models.Challenge{
	{
		{
			Prompt:        "Listen to the sound. Does it match the word?",
			AudioURL:      rainAudioURL1,
			ShownText:     "Rain",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "Yes",
		},
		{
			Prompt:        "Does the audio match the shown text?",
			AudioURL:      rainAudioURL1,
			ShownText:     "Rain",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "Yes",
		},
		{
			Prompt:        "Listen carefully. Does the audio match the shown text?",
			AudioURL:      rainAudioURL1,
			ShownText:     "Dog",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "No",
		},
		{
			Prompt:        "Compare the audio and text. Do they match exactly?",
			AudioURL:      rainAudioURL1,
			ShownText:     "Thunderstorm",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "No",
		},
	},
	{
		{
			Prompt:        "Listen to the sound. Does it match the word?",
			AudioURL:      rainAudioURL2,
			ShownText:     "Rain",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "Yes",
		},
		{
			Prompt:        "Does the audio match the shown text?",
			AudioURL:      rainAudioURL2,
			ShownText:     "Rain",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "Yes",
		},
		{
			Prompt:        "Listen carefully. Does the audio match the shown text?",
			AudioURL:      rainAudioURL2,
			ShownText:     "Dog",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "No",
		},
		{
			Prompt:        "Compare the audio and text. Do they match exactly?",
			AudioURL:      rainAudioURL2,
			ShownText:     "Thunderstorm",
			Options:       []string{"Yes", "No"},
			CorrectAnswer: "No",
		},
	},
}

var tables = map[string]*[2][4]models.Challenge{
	models.TaskImageColor:    &imageColorTable,
	models.TaskScramble:      &scrambleTable,
	models.TaskAudioMismatch: &audioMismatchTable,
}

// Challenge looks up the content for one task component at the given
// round number (1 or 2) and level (0-3). The bool reports whether the
// coordinates resolve to a table entry.
func Challenge(task string, roundNumber, level int) (models.Challenge, bool) {
	table, ok := tables[task]
	if !ok {
		return models.Challenge{}, false
	}
	if roundNumber < 1 || roundNumber > len(table) {
		return models.Challenge{}, false
	}
	if level < 0 || level >= len(table[roundNumber-1]) {
		return models.Challenge{}, false
	}
	return table[roundNumber-1][level], true
}

// ForRound assembles the full challenges map for one round at one level,
// keyed by task component.
func ForRound(roundNumber, level int) map[string]models.Challenge {
	content := make(map[string]models.Challenge, len(models.TaskComponents))
	for _, task := range models.TaskComponents {
		if ch, ok := Challenge(task, roundNumber, level); ok {
			content[task] = ch
		}
	}
	return content
}
