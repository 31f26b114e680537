package database

import (
	"encoding/json"
	"fmt"

	"github.com/example/srsqueue/pkg/models"
)

type itemRow struct {
	ID        string `db:"id"`
	Lang      string `db:"lang"`
	Part      string `db:"part"`
	Style     string `db:"style"`
	Last      int64  `db:"last_reviewed"`
	Next      int64  `db:"next_due"`
	Interval  int64  `db:"interval_secs"`
	Reviews   int    `db:"reviews"`
	Successes int    `db:"successes"`
	VocabIDs  string `db:"vocab_ids"`
}

func newItemRow(item models.StudyItem) (itemRow, error) {
	vocabIDs, err := encodeList(item.VocabIDs)
	if err != nil {
		return itemRow{}, err
	}
	return itemRow{
		ID:        item.ID,
		Lang:      item.Lang,
		Part:      string(item.Part),
		Style:     item.Style,
		Last:      item.Last,
		Next:      item.Next,
		Interval:  item.Interval,
		Reviews:   item.Reviews,
		Successes: item.Successes,
		VocabIDs:  vocabIDs,
	}, nil
}

func (r itemRow) model() (models.StudyItem, error) {
	var vocabIDs []string
	if err := decodeList(r.VocabIDs, &vocabIDs); err != nil {
		return models.StudyItem{}, fmt.Errorf("item %s: %w", r.ID, err)
	}
	return models.StudyItem{
		ID:        r.ID,
		Lang:      r.Lang,
		Part:      models.Part(r.Part),
		Style:     r.Style,
		Last:      r.Last,
		Next:      r.Next,
		Interval:  r.Interval,
		Reviews:   r.Reviews,
		Successes: r.Successes,
		VocabIDs:  vocabIDs,
	}, nil
}

type vocabRow struct {
	ID                string `db:"id"`
	Lang              string `db:"lang"`
	Writing           string `db:"writing"`
	Style             string `db:"style"`
	BannedParts       string `db:"banned_parts"`
	ContainedVocabIDs string `db:"contained_vocab_ids"`
}

func newVocabRow(v models.Vocab) (vocabRow, error) {
	banned, err := encodeList(v.BannedParts)
	if err != nil {
		return vocabRow{}, err
	}
	contained, err := encodeList(v.ContainedVocabIDs)
	if err != nil {
		return vocabRow{}, err
	}
	return vocabRow{
		ID:                v.ID,
		Lang:              v.Lang,
		Writing:           v.Writing,
		Style:             v.Style,
		BannedParts:       banned,
		ContainedVocabIDs: contained,
	}, nil
}

func (r vocabRow) model() (models.Vocab, error) {
	v := models.Vocab{ID: r.ID, Lang: r.Lang, Writing: r.Writing, Style: r.Style}
	if err := decodeList(r.BannedParts, &v.BannedParts); err != nil {
		return models.Vocab{}, fmt.Errorf("vocab %s: %w", r.ID, err)
	}
	if err := decodeList(r.ContainedVocabIDs, &v.ContainedVocabIDs); err != nil {
		return models.Vocab{}, fmt.Errorf("vocab %s: %w", r.ID, err)
	}
	return v, nil
}

// PendingReview is a review waiting in the outbox
type PendingReview struct {
	ID int64 `db:"id"`
	models.GradedReview
}

func encodeList[T any](list []T) (string, error) {
	if len(list) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList[T any](raw string, out *[]T) error {
	if raw == "" || raw == "[]" {
		*out = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode list: %w", err)
	}
	return nil
}
