package queue

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/internal/metrics"
	"github.com/example/srsqueue/internal/spaced_repetition"
	"github.com/example/srsqueue/pkg/models"
)

var ErrItemNotFound = errors.New("item not found")

const (
	defaultPreloadLimit   = 10
	defaultCharacterChunk = 50
	persistTimeout        = 30 * time.Second
)

// Options wires a Queue to its collaborators
type Options struct {
	Settings   models.StudySettings
	Remote     RemoteI
	Store      StoreI
	Outbox     OutboxI
	Quantifier *spaced_repetition.Quantifier
	DueCounter *DueCounter
	Logger     *zap.Logger

	// Now defaults to time.Now
	Now func() time.Time
	// Rand picks the list offset when AddItems is called without one
	Rand *rand.Rand
	// OnReload runs after a successful reset with reload; defaults to Clear
	OnReload func(ctx context.Context) error
	// CharacterChunk caps writings per character request
	CharacterChunk int
}

type entry struct {
	item   models.StudyItem
	loaded bool
	queued bool
	seq    int64
}

// Queue is the local working set of study items for one language
type Queue struct {
	remote     RemoteI
	store      StoreI
	outbox     OutboxI
	quantifier *spaced_repetition.Quantifier
	due        *DueCounter
	logger     *zap.Logger
	now        func() time.Time
	onReload   func(ctx context.Context) error
	chunk      int

	randMu sync.Mutex
	rnd    *rand.Rand

	mu            sync.Mutex
	settings      models.StudySettings
	entries       map[string]*entry
	vocabs        map[string]models.Vocab
	characters    map[string]models.Character
	head, tail    int64
	possiblyStale bool

	adding     guard
	fetching   guard
	preloading guard
	resetting  guard

	bg sync.WaitGroup
}

// New creates an empty queue
func New(opts Options) (*Queue, error) {
	switch {
	case opts.Remote == nil:
		return nil, errors.New("queue: remote is required")
	case opts.Store == nil:
		return nil, errors.New("queue: store is required")
	case opts.Outbox == nil:
		return nil, errors.New("queue: outbox is required")
	case opts.Quantifier == nil:
		return nil, errors.New("queue: quantifier is required")
	case opts.DueCounter == nil:
		return nil, errors.New("queue: due counter is required")
	}

	q := &Queue{
		remote:     opts.Remote,
		store:      opts.Store,
		outbox:     opts.Outbox,
		quantifier: opts.Quantifier,
		due:        opts.DueCounter,
		logger:     opts.Logger,
		now:        opts.Now,
		onReload:   opts.OnReload,
		chunk:      opts.CharacterChunk,
		rnd:        opts.Rand,
		settings:   opts.Settings,
		entries:    make(map[string]*entry),
		vocabs:     make(map[string]models.Vocab),
		characters: make(map[string]models.Character),
	}
	if q.logger == nil {
		q.logger = zap.NewNop()
	}
	if q.now == nil {
		q.now = time.Now
	}
	if q.chunk <= 0 {
		q.chunk = defaultCharacterChunk
	}
	if q.rnd == nil {
		q.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if q.onReload == nil {
		q.onReload = func(context.Context) error {
			q.Clear()
			return nil
		}
	}
	return q, nil
}

// Settings returns the current study settings
func (q *Queue) Settings() models.StudySettings {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.settings
}

// SetSettings replaces the study settings used for selection and points the
// due counter at the matching filters
func (q *Queue) SetSettings(s models.StudySettings) {
	q.mu.Lock()
	q.settings = s
	q.mu.Unlock()
	q.due.SetRequest(DueRequestFor(s))
}

// DueRequestFor builds the due count filters for settings
func DueRequestFor(s models.StudySettings) api.DueRequest {
	return api.DueRequest{
		Lang:   s.Lang,
		Lists:  s.Lists,
		Parts:  s.PartStrings(),
		Styles: s.Styles,
	}
}

// Next returns the items ready to be studied, most ready first.
// Rune items that can't be drawn are dequeued and bumped two weeks.
func (q *Queue) Next(now time.Time) []models.StudyItem {
	type candidate struct {
		item      models.StudyItem
		seq       int64
		readiness float64
	}

	q.mu.Lock()
	var (
		candidates []candidate
		bumped     []models.StudyItem
	)
	for _, e := range q.entries {
		if !e.queued || !e.loaded {
			continue
		}
		if !q.settings.HasPart(e.item.Part) || !q.settings.HasStyle(e.item.Style) {
			continue
		}
		// Without a known vocab nothing is banned, but there is nothing to draw either
		vocab, hasVocab := q.activeVocabLocked(e.item)
		if hasVocab && vocab.IsBanned(e.item.Part) {
			continue
		}
		if e.item.Part == models.PartRune {
			reason := "strokes"
			if hasVocab {
				reason = q.bumpReasonLocked(e.item, vocab)
			}
			if reason != "" {
				e.queued = false
				e.item = e.item.Bump()
				bumped = append(bumped, e.item.Clone())
				metrics.Bumps.WithLabelValues(reason).Inc()
				q.logger.Info("bumped item", zap.String("item", e.item.ID), zap.String("reason", reason))
				continue
			}
		}
		candidates = append(candidates, candidate{
			item:      e.item.Clone(),
			seq:       e.seq,
			readiness: spaced_repetition.Readiness(e.item, now),
		})
	}
	metrics.QueueLength.Set(float64(q.queueLenLocked()))
	q.mu.Unlock()

	if len(bumped) > 0 {
		q.persistAsync(bumped)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].readiness != candidates[j].readiness {
			return candidates[i].readiness > candidates[j].readiness
		}
		return candidates[i].seq < candidates[j].seq
	})

	items := make([]models.StudyItem, len(candidates))
	for i, c := range candidates {
		items[i] = c.item
	}
	return items
}

// PreloadCandidates returns queued items still missing detail, most ready first
func (q *Queue) PreloadCandidates(now time.Time, limit int) []models.StudyItem {
	if limit <= 0 {
		limit = defaultPreloadLimit
	}

	q.mu.Lock()
	pending := make([]*entry, 0)
	for _, e := range q.entries {
		if e.queued && !e.loaded {
			pending = append(pending, e)
		}
	}
	readiness := make(map[string]float64, len(pending))
	for _, e := range pending {
		readiness[e.item.ID] = spaced_repetition.Readiness(e.item, now)
	}
	sort.Slice(pending, func(i, j int) bool {
		ri, rj := readiness[pending[i].item.ID], readiness[pending[j].item.ID]
		if ri != rj {
			return ri > rj
		}
		return pending[i].seq < pending[j].seq
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	items := make([]models.StudyItem, len(pending))
	for i, e := range pending {
		items[i] = e.item.Clone()
	}
	q.mu.Unlock()

	return items
}

// Item returns a copy of the item with id
func (q *Queue) Item(id string) (models.StudyItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[id]
	if !ok {
		return models.StudyItem{}, false
	}
	return e.item.Clone(), true
}

// ActiveVocab returns the vocab the item draws its next prompt from
func (q *Queue) ActiveVocab(id string) (models.Vocab, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[id]
	if !ok {
		return models.Vocab{}, false
	}
	return q.activeVocabLocked(e.item)
}

// Len is the number of known items
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// QueueLen is the number of items in the working queue
func (q *Queue) QueueLen() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queueLenLocked()
}

// PossiblyStale reports whether the last preload looked out of sync with the server
func (q *Queue) PossiblyStale() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.possiblyStale
}

// Ban stops the item's part from being studied through its active vocab
func (q *Queue) Ban(ctx context.Context, id string) error {
	return q.updateVocab(ctx, id, models.Vocab.BanPart)
}

// Unban lifts a ban set with Ban
func (q *Queue) Unban(ctx context.Context, id string) error {
	return q.updateVocab(ctx, id, models.Vocab.UnbanPart)
}

func (q *Queue) updateVocab(ctx context.Context, id string, change func(models.Vocab, models.Part) models.Vocab) error {
	q.mu.Lock()
	e, ok := q.entries[id]
	if !ok {
		q.mu.Unlock()
		return fmt.Errorf("%s: %w", id, ErrItemNotFound)
	}
	vocab, ok := q.activeVocabLocked(e.item)
	if !ok {
		q.mu.Unlock()
		return fmt.Errorf("%s: vocab: %w", id, ErrItemNotFound)
	}
	vocab = change(vocab, e.item.Part)
	q.vocabs[vocab.ID] = vocab
	q.mu.Unlock()

	if err := q.store.SaveVocabs(ctx, []models.Vocab{vocab}); err != nil {
		return fmt.Errorf("save vocab %s: %w", vocab.ID, err)
	}
	return nil
}

// Restore loads the persisted snapshot into the queue. Restored items are
// treated as loaded since the snapshot carries their detail.
func (q *Queue) Restore(ctx context.Context) error {
	lang := q.Settings().Lang
	snapshot, err := q.store.Load(ctx, lang)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	q.mu.Lock()
	for _, item := range snapshot.Items {
		e := q.mergeItemLocked(item, true, false)
		e.loaded = true
	}
	q.mergeVocabsLocked(snapshot.Vocabs)
	q.mergeCharactersLocked(snapshot.Characters)
	q.mu.Unlock()

	q.logger.Info("restored snapshot",
		zap.String("lang", lang),
		zap.Int("items", len(snapshot.Items)),
		zap.Int("vocabs", len(snapshot.Vocabs)),
		zap.Int("characters", len(snapshot.Characters)),
	)
	return nil
}

// Clear drops all items and vocabs so the next fetch rebuilds the queue.
// Stroke data is kept.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.entries = make(map[string]*entry)
	q.vocabs = make(map[string]models.Vocab)
	q.head, q.tail = 0, 0
	q.mu.Unlock()
}

// Wait blocks until background persistence has finished
func (q *Queue) Wait() {
	q.bg.Wait()
}

func (q *Queue) queueLenLocked() int {
	n := 0
	for _, e := range q.entries {
		if e.queued {
			n++
		}
	}
	return n
}

// mergeItemLocked adds or replaces an item. queued is only ever raised here;
// front places the item ahead of everything already known.
func (q *Queue) mergeItemLocked(item models.StudyItem, queued, front bool) *entry {
	e, ok := q.entries[item.ID]
	if !ok {
		e = &entry{seq: q.tail}
		q.tail++
		q.entries[item.ID] = e
	}
	e.item = item.Clone()
	if queued {
		e.queued = true
	}
	if front {
		q.head--
		e.seq = q.head
	}
	return e
}

func (q *Queue) mergeVocabsLocked(vocabs []models.Vocab) {
	for _, v := range vocabs {
		q.vocabs[v.ID] = v
	}
}

func (q *Queue) mergeCharactersLocked(characters []models.Character) {
	for _, c := range characters {
		q.characters[c.Writing] = c
	}
}

// activeVocabLocked picks among the item's style-accepted vocabs by review count
func (q *Queue) activeVocabLocked(item models.StudyItem) (models.Vocab, bool) {
	vocabs := make([]models.Vocab, 0, len(item.VocabIDs))
	for _, id := range item.VocabIDs {
		v, ok := q.vocabs[id]
		if !ok {
			continue
		}
		if q.settings.AcceptsVocabStyle(v) {
			vocabs = append(vocabs, v)
		}
	}
	if len(vocabs) == 0 {
		return models.Vocab{}, false
	}
	return vocabs[item.Reviews%len(vocabs)], true
}

func (q *Queue) characterDataLoadedLocked(vocab models.Vocab) bool {
	for _, c := range vocab.CharactersWithoutFillers(q.settings.StudyKana) {
		if _, ok := q.characters[c]; !ok {
			return false
		}
	}
	return true
}

// bumpReasonLocked returns why a rune item can't be drawn, or "" if it can
func (q *Queue) bumpReasonLocked(item models.StudyItem, vocab models.Vocab) string {
	if !q.characterDataLoadedLocked(vocab) {
		return "strokes"
	}
	if item.Lang == "ja" && !q.settings.StudyKana && models.IsKana(itemBase(item, vocab)) {
		return "kana"
	}
	return ""
}

func itemBase(item models.StudyItem, vocab models.Vocab) string {
	id, err := models.ParseItemID(item.ID)
	if err != nil {
		return vocab.Writing
	}
	return id.Base
}

func (q *Queue) persistAsync(items []models.StudyItem) {
	q.bg.Add(1)
	go func() {
		defer q.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := q.store.SaveItems(ctx, items); err != nil {
			q.logger.Warn("failed to persist items", zap.Int("count", len(items)), zap.Error(err))
		}
	}()
}

func (q *Queue) randomOffset() int {
	q.randMu.Lock()
	defer q.randMu.Unlock()
	return q.rnd.Intn(11)
}
