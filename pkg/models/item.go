package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Part is the study aspect of an item
type Part string

const (
	PartDefinition Part = "defn"
	PartReading    Part = "rdng"
	PartRune       Part = "rune" // writing
	PartTone       Part = "tone"
)

// AllParts lists every part in display order
var AllParts = []Part{PartDefinition, PartReading, PartRune, PartTone}

// Valid reports whether p is one of the known parts
func (p Part) Valid() bool {
	switch p {
	case PartDefinition, PartReading, PartRune, PartTone:
		return true
	}
	return false
}

// BumpSeconds is how far a forced bump pushes an item's due date (two weeks)
const BumpSeconds int64 = 14 * 24 * 60 * 60

// StudyItem is one reviewable unit tracked per user
type StudyItem struct {
	ID        string   `json:"id" db:"id"`
	Lang      string   `json:"lang" db:"lang"`
	Part      Part     `json:"part" db:"part"`
	Style     string   `json:"style" db:"style"`
	Last      int64    `json:"last" db:"last"`         // Epoch seconds of the last review, 0 if never reviewed
	Next      int64    `json:"next" db:"next"`         // Epoch seconds the item is due
	Interval  int64    `json:"interval" db:"interval"` // Current interval in seconds
	Reviews   int      `json:"reviews" db:"reviews"`
	Successes int      `json:"successes" db:"successes"`
	VocabIDs  []string `json:"vocabIds" db:"-"`
}

// Reviewed reports whether the item has a last review time
func (i StudyItem) Reviewed() bool {
	return i.Last != 0
}

// Bump returns a copy of the item due two weeks later than it is now
func (i StudyItem) Bump() StudyItem {
	i.Next += BumpSeconds
	return i
}

// Clone returns a copy that shares no slices with i
func (i StudyItem) Clone() StudyItem {
	if i.VocabIDs != nil {
		ids := make([]string, len(i.VocabIDs))
		copy(ids, i.VocabIDs)
		i.VocabIDs = ids
	}
	return i
}

// ItemID is the parsed form of a StudyItem id: owner-lang-base-variation-part
type ItemID struct {
	Owner     string
	Lang      string
	Base      string
	Variation int
	Part      Part
}

// ParseItemID splits an item id into its positional segments.
// The base segment may itself contain dashes.
func ParseItemID(id string) (ItemID, error) {
	segments := strings.Split(id, "-")
	if len(segments) < 5 {
		return ItemID{}, fmt.Errorf("invalid item id %q: want owner-lang-base-variation-part", id)
	}

	n := len(segments)
	variation, err := strconv.Atoi(segments[n-2])
	if err != nil {
		return ItemID{}, fmt.Errorf("invalid item id %q: variation: %w", id, err)
	}

	part := Part(segments[n-1])
	if !part.Valid() {
		return ItemID{}, fmt.Errorf("invalid item id %q: unknown part %q", id, part)
	}

	return ItemID{
		Owner:     segments[0],
		Lang:      segments[1],
		Base:      strings.Join(segments[2:n-2], "-"),
		Variation: variation,
		Part:      part,
	}, nil
}

// String joins the segments back into the opaque id form
func (id ItemID) String() string {
	return strings.Join([]string{id.Owner, id.Lang, id.Base, strconv.Itoa(id.Variation), string(id.Part)}, "-")
}

// VocabID is the id of the vocabulary the item was built from: lang-base
func (id ItemID) VocabID() string {
	return id.Lang + "-" + id.Base
}
