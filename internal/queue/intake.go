package queue

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/pkg/models"
)

const (
	defaultFetchLimit = 50
	fetchPreloadLimit = 5
	defaultAddLimit   = 1
)

// AddOptions controls AddItems
type AddOptions struct {
	Limit  int // number of add attempts, default 1
	Lists  []string
	Offset int // list offset to start from; zero picks one at random
}

// AddResult summarizes an AddItems run
type AddResult struct {
	Items          []models.StudyItem
	NumVocabsAdded int
	ItemsFailed    int
}

// AddItems adds new items one at a time from the user's lists. A failed add is
// counted and skipped. If another add is in flight the call does nothing.
func (q *Queue) AddItems(ctx context.Context, opts AddOptions) (AddResult, error) {
	var result AddResult
	if !q.adding.begin() {
		return result, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultAddLimit
	}
	offset := opts.Offset
	if offset == 0 {
		offset = q.randomOffset()
	}
	settings := q.Settings()
	lists := opts.Lists
	if len(lists) == 0 {
		lists = settings.Lists
	}

	for i := 0; i < limit; i++ {
		resp, err := q.remote.AddItem(ctx, api.AddRequest{Lang: settings.Lang, Lists: lists, Offset: offset})
		if err != nil {
			result.ItemsFailed++
			q.logger.Warn("failed to add item", zap.Int("offset", offset), zap.Error(err))
			continue
		}
		offset++
		result.NumVocabsAdded += resp.NumVocabsAdded

		if len(resp.Items) == 0 {
			continue
		}
		item := resp.Items[0]
		q.mu.Lock()
		q.mergeItemLocked(item, true, true)
		q.mu.Unlock()
		result.Items = append(result.Items, item.Clone())
		q.logger.Debug("added item", zap.String("item", item.ID))
	}
	q.adding.end()

	if len(result.Items) > 0 {
		q.persistAsync(result.Items)
	}

	if err := q.PreloadNext(ctx, 0); err != nil {
		q.logger.Warn("preload after add failed", zap.Error(err))
	}

	if result.NumVocabsAdded > 0 {
		q.due.RecordAdded(result.NumVocabsAdded * len(settings.Parts))
		if _, err := q.due.Update(ctx, true); err != nil {
			q.logger.Warn("due count update after add failed", zap.Error(err))
		}
	}

	return result, nil
}

// NextOptions controls FetchNext
type NextOptions struct {
	Limit    int // default 50
	Lists    []string
	Sections []string
}

// FetchNext pulls the next batch from the server into the working queue and
// preloads the first few. If a fetch is already in flight the call does nothing.
func (q *Queue) FetchNext(ctx context.Context, opts NextOptions) error {
	if !q.fetching.begin() {
		return nil
	}
	defer q.fetching.end()

	if opts.Limit <= 0 {
		opts.Limit = defaultFetchLimit
	}
	settings := q.Settings()
	lists := opts.Lists
	if len(lists) == 0 {
		lists = settings.Lists
	}

	if err := q.remote.UpdateQueue(ctx, settings.Lang); err != nil {
		return fmt.Errorf("update queue: %w", err)
	}

	batch, err := q.remote.Next(ctx, api.NextRequest{
		Lang:     settings.Lang,
		Limit:    opts.Limit,
		Lists:    lists,
		Parts:    settings.PartStrings(),
		Sections: opts.Sections,
		Styles:   settings.Styles,
	})
	if err != nil {
		return fmt.Errorf("fetch next: %w", err)
	}

	q.mu.Lock()
	for _, item := range batch.Items {
		q.mergeItemLocked(item, true, false)
	}
	for _, item := range batch.ContainedItems {
		q.mergeItemLocked(item, false, false)
	}
	q.mergeVocabsLocked(batch.Vocabs)
	q.mergeCharactersLocked(batch.Characters)
	q.mu.Unlock()

	q.logger.Info("fetched next batch",
		zap.Int("items", len(batch.Items)),
		zap.Int("contained", len(batch.ContainedItems)),
		zap.Int("vocabs", len(batch.Vocabs)),
	)

	q.persistBatch(ctx, batch.Items, batch.ContainedItems, batch.Vocabs, batch.Characters)

	if err := q.PreloadNext(ctx, fetchPreloadLimit); err != nil {
		return fmt.Errorf("preload: %w", err)
	}
	return nil
}

// persistBatch writes fetched data to the local store. Failures are logged;
// the in-memory queue stays authoritative.
func (q *Queue) persistBatch(ctx context.Context, items, contained []models.StudyItem, vocabs []models.Vocab, characters []models.Character) {
	all := make([]models.StudyItem, 0, len(items)+len(contained))
	all = append(all, items...)
	all = append(all, contained...)
	if len(all) > 0 {
		if err := q.store.SaveItems(ctx, all); err != nil {
			q.logger.Warn("failed to save items", zap.Error(err))
		}
	}
	if len(vocabs) > 0 {
		if err := q.store.SaveVocabs(ctx, vocabs); err != nil {
			q.logger.Warn("failed to save vocabs", zap.Error(err))
		}
	}
	if len(characters) > 0 {
		if err := q.store.SaveCharacters(ctx, characters); err != nil {
			q.logger.Warn("failed to save characters", zap.Error(err))
		}
	}
}
