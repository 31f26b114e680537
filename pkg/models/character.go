package models

// Character holds the stroke data for a single glyph
type Character struct {
	Lang    string `json:"lang" db:"lang"`
	Writing string `json:"writing" db:"writing"`
	Strokes string `json:"strokes" db:"strokes"` // Raw stroke payload as served
}

// Snapshot is everything persisted locally for one language
type Snapshot struct {
	Items      []StudyItem
	Vocabs     []Vocab
	Characters []Character
}
