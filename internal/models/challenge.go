package models

// Challenge is one mini-task inside a round's content map. Only the
// fields relevant to the task type are set: image_color carries
// ImageURL, scramble carries ScrambledWord, audio_mismatch carries
// AudioURL and ShownText.
type Challenge struct {
	Prompt        string   `bson:"prompt" json:"prompt"`
	ImageURL      string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	AudioURL      string   `bson:"audio_url,omitempty" json:"audio_url,omitempty"`
	ScrambledWord string   `bson:"scrambled_word,omitempty" json:"scrambled_word,omitempty"`
	ShownText     string   `bson:"shown_text,omitempty" json:"shown_text,omitempty"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer"`
}
