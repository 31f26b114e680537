package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/srsqueue/pkg/models"
)

// Store keeps the local copy of items, vocabs and stroke data
type Store struct {
	db *sqlx.DB
}

// NewStore creates a store on an open connection
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// SaveItems upserts items
func (s *Store) SaveItems(ctx context.Context, items []models.StudyItem) error {
	if len(items) == 0 {
		return nil
	}

	query := s.db.Rebind(`
		INSERT INTO study_items (id, lang, part, style, last_reviewed, next_due, interval_secs, reviews, successes, vocab_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			lang = excluded.lang,
			part = excluded.part,
			style = excluded.style,
			last_reviewed = excluded.last_reviewed,
			next_due = excluded.next_due,
			interval_secs = excluded.interval_secs,
			reviews = excluded.reviews,
			successes = excluded.successes,
			vocab_ids = excluded.vocab_ids
	`)

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			row, err := newItemRow(item)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, query,
				row.ID, row.Lang, row.Part, row.Style, row.Last, row.Next,
				row.Interval, row.Reviews, row.Successes, row.VocabIDs,
			)
			if err != nil {
				return fmt.Errorf("failed to save item %s: %w", item.ID, err)
			}
		}
		return nil
	})
}

// SaveVocabs upserts vocabs
func (s *Store) SaveVocabs(ctx context.Context, vocabs []models.Vocab) error {
	if len(vocabs) == 0 {
		return nil
	}

	query := s.db.Rebind(`
		INSERT INTO vocabs (id, lang, writing, style, banned_parts, contained_vocab_ids)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			lang = excluded.lang,
			writing = excluded.writing,
			style = excluded.style,
			banned_parts = excluded.banned_parts,
			contained_vocab_ids = excluded.contained_vocab_ids
	`)

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, v := range vocabs {
			row, err := newVocabRow(v)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, query, row.ID, row.Lang, row.Writing, row.Style, row.BannedParts, row.ContainedVocabIDs)
			if err != nil {
				return fmt.Errorf("failed to save vocab %s: %w", v.ID, err)
			}
		}
		return nil
	})
}

// SaveCharacters upserts stroke data
func (s *Store) SaveCharacters(ctx context.Context, characters []models.Character) error {
	if len(characters) == 0 {
		return nil
	}

	query := s.db.Rebind(`
		INSERT INTO characters (lang, writing, strokes)
		VALUES (?, ?, ?)
		ON CONFLICT (lang, writing) DO UPDATE SET strokes = excluded.strokes
	`)

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, c := range characters {
			if _, err := tx.ExecContext(ctx, query, c.Lang, c.Writing, c.Strokes); err != nil {
				return fmt.Errorf("failed to save character %s: %w", c.Writing, err)
			}
		}
		return nil
	})
}

// Load returns everything stored for lang
func (s *Store) Load(ctx context.Context, lang string) (models.Snapshot, error) {
	var snapshot models.Snapshot

	var items []itemRow
	err := s.db.SelectContext(ctx, &items, s.db.Rebind(`
		SELECT id, lang, part, style, last_reviewed, next_due, interval_secs, reviews, successes, vocab_ids
		FROM study_items WHERE lang = ? ORDER BY id
	`), lang)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load items: %w", err)
	}
	for _, row := range items {
		item, err := row.model()
		if err != nil {
			return snapshot, err
		}
		snapshot.Items = append(snapshot.Items, item)
	}

	var vocabs []vocabRow
	err = s.db.SelectContext(ctx, &vocabs, s.db.Rebind(`
		SELECT id, lang, writing, style, banned_parts, contained_vocab_ids
		FROM vocabs WHERE lang = ? ORDER BY id
	`), lang)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load vocabs: %w", err)
	}
	for _, row := range vocabs {
		v, err := row.model()
		if err != nil {
			return snapshot, err
		}
		snapshot.Vocabs = append(snapshot.Vocabs, v)
	}

	err = s.db.SelectContext(ctx, &snapshot.Characters, s.db.Rebind(`
		SELECT lang, writing, strokes FROM characters WHERE lang = ? ORDER BY writing
	`), lang)
	if err != nil {
		return snapshot, fmt.Errorf("failed to load characters: %w", err)
	}

	return snapshot, nil
}

// AllItems returns every stored item across languages
func (s *Store) AllItems(ctx context.Context) ([]models.StudyItem, error) {
	var rows []itemRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, lang, part, style, last_reviewed, next_due, interval_secs, reviews, successes, vocab_ids
		FROM study_items ORDER BY lang, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	items := make([]models.StudyItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.model()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
