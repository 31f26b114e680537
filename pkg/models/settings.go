package models

// StudySettings is what the user has chosen to study
type StudySettings struct {
	UserID            string   `json:"user_id" mapstructure:"user_id" validate:"required"`
	Lang              string   `json:"lang" mapstructure:"lang" validate:"required"`
	Parts             []Part   `json:"parts" mapstructure:"parts" validate:"min=1,dive,oneof=defn rdng rune tone"`
	Styles            []string `json:"styles" mapstructure:"styles"` // Empty means every style
	Lists             []string `json:"lists" mapstructure:"lists"`
	StudyKana         bool     `json:"study_kana" mapstructure:"study_kana"`
	ReviewSimplified  bool     `json:"review_simplified" mapstructure:"review_simplified"`
	ReviewTraditional bool     `json:"review_traditional" mapstructure:"review_traditional"`
}

// HasPart reports whether part is being studied
func (s StudySettings) HasPart(part Part) bool {
	for _, p := range s.Parts {
		if p == part {
			return true
		}
	}
	return false
}

// HasStyle reports whether an item of the given style is being studied.
// Items without a style, and settings without styles, always match.
func (s StudySettings) HasStyle(style string) bool {
	if style == "" || len(s.Styles) == 0 {
		return true
	}
	for _, st := range s.Styles {
		if st == style {
			return true
		}
	}
	return false
}

// PartStrings returns the parts as plain strings for query parameters
func (s StudySettings) PartStrings() []string {
	parts := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = string(p)
	}
	return parts
}

// AcceptsVocabStyle reports whether a vocab of the given style is reviewed.
// Only Chinese vocabs are filtered by style.
func (s StudySettings) AcceptsVocabStyle(v Vocab) bool {
	if !v.IsChinese() {
		return true
	}
	switch v.Style {
	case StyleSimplified:
		return s.ReviewSimplified
	case StyleTraditional:
		return s.ReviewTraditional
	case StyleBoth, StyleNone:
		return true
	}
	return false
}
