package domain

// CardAudio holds regional pronunciation audio links for a card. Absent links
// serialize as null; the dataset distinguishes "no recording" from an empty
// string.
type CardAudio struct {
	UK *string `json:"uk"`
	US *string `json:"us"`
}

// Card is one record of the flashcard dataset: a headword from the target
// word list, its resolved translation with provenance, and the Oxford
// metadata known for that word. Level and audio links are null when the
// catalog has no data; pos and oxford_urls are empty arrays, never null.
type Card struct {
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	Source      string    `json:"source"`
	Level       *string   `json:"level"`
	POS         []string  `json:"pos"`
	OxfordURLs  []string  `json:"oxford_urls"`
	Audio       CardAudio `json:"audio"`
}
