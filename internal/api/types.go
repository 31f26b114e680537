package api

import (
	"encoding/json"

	"github.com/example/srsqueue/pkg/models"
)

// NextRequest asks the server for the next batch of queued items
type NextRequest struct {
	Lang     string
	Limit    int
	Lists    []string
	Parts    []string
	Sections []string
	Styles   []string
}

// Batch is an ordered set of items with their side tables
type Batch struct {
	Items          []models.StudyItem `json:"Items"`
	ContainedItems []models.StudyItem `json:"ContainedItems"`
	Vocabs         []models.Vocab     `json:"Vocabs"`
	Characters     []models.Character `json:"Characters"`
	Decomps        json.RawMessage    `json:"Decomps,omitempty"`
	Sentences      json.RawMessage    `json:"Sentences,omitempty"`
	Cursor         string             `json:"cursor,omitempty"`
}

// DetailRequest asks for full detail of specific items
type DetailRequest struct {
	IDs                 []string
	IncludeContained    bool
	IncludeDecomps      bool
	IncludeHeisigs      bool
	IncludeSentences    bool
	IncludeStrokes      bool
	IncludeTopMnemonics bool
	IncludeVocabs       bool
}

// DetailResponse is positionally aligned with DetailRequest.IDs. Unknown ids come
// back as nil.
type DetailResponse struct {
	Items          []*models.StudyItem `json:"Items"`
	ContainedItems []models.StudyItem  `json:"ContainedItems"`
	Vocabs         []models.Vocab      `json:"Vocabs"`
	Decomps        json.RawMessage     `json:"Decomps,omitempty"`
	Mnemonics      json.RawMessage     `json:"TopMnemonics,omitempty"`
}

// DueRequest filters the due count
type DueRequest struct {
	Lang   string
	Lists  []string
	Parts  []string
	Styles []string
}

type dueResponse struct {
	Due models.DueCounts `json:"due"`
}

// AddRequest adds new items from the user's lists
type AddRequest struct {
	Lang   string
	Lists  []string
	Offset int
}

// AddResponse lists the items the server added
type AddResponse struct {
	Items          []models.StudyItem `json:"Items"`
	NumVocabsAdded int                `json:"numVocabsAdded"`
}
