package queue

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/internal/metrics"
	"github.com/example/srsqueue/pkg/models"
)

const (
	// Share of unresolved items in one preload that marks the queue as desynced
	desyncThreshold = 0.9

	characterFetchConcurrency = 4
)

// PreloadNext loads detail for the most ready queued items that don't have it
// yet, then fetches stroke data the known vocabs are missing. Only one preload
// runs at a time; a concurrent call returns nil without doing anything.
//
// When almost every requested item comes back unresolved the server queue is
// assumed stale. The first such batch only raises a flag; a second one in a row
// resets the server queue and ends the preload.
func (q *Queue) PreloadNext(ctx context.Context, limit int) error {
	if !q.preloading.begin() {
		return nil
	}
	defer q.preloading.end()

	candidates := q.PreloadCandidates(q.now(), limit)
	if len(candidates) == 0 {
		return nil
	}

	ids := make([]string, len(candidates))
	for i, item := range candidates {
		ids[i] = item.ID
	}

	resp, err := q.remote.ItemDetails(ctx, api.DetailRequest{
		IDs:                 ids,
		IncludeContained:    true,
		IncludeDecomps:      true,
		IncludeTopMnemonics: true,
		IncludeVocabs:       true,
	})
	if err != nil {
		metrics.PreloadBatches.WithLabelValues("error").Inc()
		return fmt.Errorf("item details: %w", err)
	}

	var (
		loaded []models.StudyItem
		nulls  int
	)
	q.mu.Lock()
	for i := range ids {
		var item *models.StudyItem
		if i < len(resp.Items) {
			item = resp.Items[i]
		}
		if item == nil {
			nulls++
			continue
		}
		e := q.mergeItemLocked(*item, false, false)
		e.loaded = true
		loaded = append(loaded, e.item.Clone())
	}
	for _, item := range resp.ContainedItems {
		q.mergeItemLocked(item, false, false)
	}
	q.mergeVocabsLocked(resp.Vocabs)

	desynced := float64(nulls)/float64(len(ids)) >= desyncThreshold
	secondStrike := desynced && q.possiblyStale
	q.possiblyStale = desynced
	q.mu.Unlock()

	metrics.PreloadNullItems.Add(float64(nulls))

	if secondStrike {
		metrics.PreloadBatches.WithLabelValues("reset").Inc()
		q.logger.Warn("queue out of sync, resetting",
			zap.Int("requested", len(ids)),
			zap.Int("unresolved", nulls),
		)
		if err := q.ResetQueue(ctx, true); err != nil {
			return err
		}
		return nil
	}
	if desynced {
		metrics.PreloadBatches.WithLabelValues("desync").Inc()
		q.logger.Info("queue possibly stale",
			zap.Int("requested", len(ids)),
			zap.Int("unresolved", nulls),
		)
	} else {
		metrics.PreloadBatches.WithLabelValues("ok").Inc()
	}

	q.persistBatch(ctx, loaded, resp.ContainedItems, resp.Vocabs, nil)

	if err := q.fetchCharacters(ctx); err != nil {
		return fmt.Errorf("fetch characters: %w", err)
	}
	return nil
}

// fetchCharacters requests stroke data for every writing of the known vocabs
// that isn't loaded yet, in chunks fetched concurrently.
func (q *Queue) fetchCharacters(ctx context.Context) error {
	q.mu.Lock()
	lang := q.settings.Lang
	seen := make(map[string]bool)
	var missing []string
	for _, v := range q.vocabs {
		for _, c := range v.CharactersWithoutFillers(q.settings.StudyKana) {
			if seen[c] {
				continue
			}
			seen[c] = true
			if _, ok := q.characters[c]; !ok {
				missing = append(missing, c)
			}
		}
	}
	q.mu.Unlock()

	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(characterFetchConcurrency)

	for start := 0; start < len(missing); start += q.chunk {
		end := start + q.chunk
		if end > len(missing) {
			end = len(missing)
		}
		writings := missing[start:end]

		g.Go(func() error {
			characters, err := q.remote.Characters(gctx, lang, writings)
			if err != nil {
				return err
			}
			q.mu.Lock()
			q.mergeCharactersLocked(characters)
			q.mu.Unlock()

			if len(characters) > 0 {
				if err := q.store.SaveCharacters(gctx, characters); err != nil {
					q.logger.Warn("failed to save characters", zap.Error(err))
				}
			}
			return nil
		})
	}

	return g.Wait()
}
