package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/pkg/models"
)

func TestPreloadNext_LoadsDetailAndCharacters(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue

	a := newItem("a", models.PartDefinition, vocabNi.ID)
	b := newItem("b", models.PartRune, "zh-好")
	q.put(a, false, true)
	q.put(b, false, true)
	q.putCharacters("你")

	gomock.InOrder(
		f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req api.DetailRequest) (*api.DetailResponse, error) {
				assert.ElementsMatch(t, []string{"a", "b"}, req.IDs)
				assert.True(t, req.IncludeVocabs)
				assert.True(t, req.IncludeContained)
				resp, _ := echoDetails(a, b)(ctx, req)
				resp.Vocabs = []models.Vocab{vocabNi, {ID: "zh-好", Lang: "zh", Writing: "好", Style: models.StyleSimplified}}
				resp.ContainedItems = []models.StudyItem{newItem("child", models.PartDefinition, vocabNi.ID)}
				return resp, nil
			}),
		f.remote.EXPECT().Characters(gomock.Any(), "zh", []string{"好"}).
			Return([]models.Character{{Lang: "zh", Writing: "好", Strokes: "s"}}, nil),
	)

	require.NoError(t, q.PreloadNext(context.Background(), 0))

	assert.ElementsMatch(t, []string{"a", "b"}, ids(q.Next(t0)))
	loaded, queued := q.state("child")
	assert.False(t, loaded)
	assert.False(t, queued)
	assert.False(t, q.PossiblyStale())

	_, saved := f.store.characters["好"]
	assert.True(t, saved)
}

func TestPreloadNext_NoCandidates(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	assert.NoError(t, f.queue.PreloadNext(context.Background(), 0))
}

func TestPreloadNext_NullsStayUnloaded(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue

	a := newItem("a", models.PartDefinition, vocabNi.ID)
	q.put(a, false, true)
	q.put(newItem("gone", models.PartDefinition, vocabNi.ID), false, true)

	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).DoAndReturn(echoDetails(a))

	require.NoError(t, q.PreloadNext(context.Background(), 0))

	loaded, _ := q.state("a")
	assert.True(t, loaded)
	loaded, queued := q.state("gone")
	assert.False(t, loaded)
	assert.True(t, queued)
	assert.False(t, q.PossiblyStale())
}

func TestPreloadNext_ShortResponseCountsAsNull(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue
	q.put(newItem("a", models.PartDefinition), false, true)

	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).Return(&api.DetailResponse{}, nil)

	require.NoError(t, q.PreloadNext(context.Background(), 0))
	assert.True(t, q.PossiblyStale())
}

func TestPreloadNext_DesyncResetsOnSecondStrike(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue

	for _, id := range []string{"a", "b", "c"} {
		q.put(newItem(id, models.PartDefinition, vocabNi.ID), false, true)
	}

	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).DoAndReturn(echoDetails()).Times(2)
	f.remote.EXPECT().ResetQueue(gomock.Any(), "user-1", "zh").Return(nil).Times(1)
	f.remote.EXPECT().Characters(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, q.PreloadNext(context.Background(), 0))
	assert.True(t, q.PossiblyStale())
	assert.Equal(t, 3, q.Len())

	require.NoError(t, q.PreloadNext(context.Background(), 0))
	assert.False(t, q.PossiblyStale())
	assert.Equal(t, 0, q.Len())
}

func TestPreloadNext_HealthyBatchClearsStrike(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue

	a := newItem("a", models.PartDefinition, vocabNi.ID)
	q.put(a, false, true)

	f.remote.EXPECT().ResetQueue(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	gomock.InOrder(
		f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).DoAndReturn(echoDetails()),
		f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).DoAndReturn(echoDetails(a)),
	)

	require.NoError(t, q.PreloadNext(context.Background(), 0))
	assert.True(t, q.PossiblyStale())
	require.NoError(t, q.PreloadNext(context.Background(), 0))
	assert.False(t, q.PossiblyStale())

	b := newItem("b", models.PartDefinition, vocabNi.ID)
	q.put(b, false, true)
	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).DoAndReturn(echoDetails())

	require.NoError(t, q.PreloadNext(context.Background(), 0))
	assert.True(t, q.PossiblyStale())
	assert.Equal(t, 2, q.Len())
}

func TestPreloadNext_DesyncResetFailure(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue
	q.put(newItem("a", models.PartDefinition), false, true)

	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).DoAndReturn(echoDetails()).Times(2)
	f.remote.EXPECT().ResetQueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("503"))

	require.NoError(t, q.PreloadNext(context.Background(), 0))
	err := q.PreloadNext(context.Background(), 0)
	assert.True(t, errors.Is(err, ErrQueueReset))
	assert.True(t, q.PossiblyStale())
	assert.Equal(t, Idle, q.preloading.current())
}

func TestPreloadNext_SingleFlight(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue
	a := newItem("a", models.PartDefinition)
	q.put(a, false, true)

	started := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req api.DetailRequest) (*api.DetailResponse, error) {
			close(started)
			<-release
			return echoDetails(a)(ctx, req)
		}).Times(1)

	errc := make(chan error, 1)
	go func() {
		errc <- q.PreloadNext(context.Background(), 0)
	}()

	<-started
	assert.Equal(t, Active, q.preloading.current())
	assert.NoError(t, q.PreloadNext(context.Background(), 0))

	close(release)
	require.NoError(t, <-errc)
	assert.Equal(t, Idle, q.preloading.current())
}

func TestPreloadNext_ReleasesGuardOnError(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue
	a := newItem("a", models.PartDefinition)
	q.put(a, false, true)

	gomock.InOrder(
		f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")),
		f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).DoAndReturn(echoDetails(a)),
	)

	assert.Error(t, q.PreloadNext(context.Background(), 0))
	assert.Equal(t, Idle, q.preloading.current())
	assert.NoError(t, q.PreloadNext(context.Background(), 0))
}

func TestPreloadNext_ChunksCharacterRequests(t *testing.T) {
	f := newFixture(t, defaultSettings(), func(o *Options) { o.CharacterChunk = 2 })
	q := f.queue

	vocab := models.Vocab{ID: "zh-long", Lang: "zh", Writing: "一二三四五", Style: models.StyleSimplified}
	a := newItem("a", models.PartDefinition, vocab.ID)
	q.put(a, false, true)

	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req api.DetailRequest) (*api.DetailResponse, error) {
			resp, _ := echoDetails(a)(ctx, req)
			resp.Vocabs = []models.Vocab{vocab}
			return resp, nil
		})
	f.remote.EXPECT().Characters(gomock.Any(), "zh", gomock.Any()).
		DoAndReturn(func(_ context.Context, lang string, writings []string) ([]models.Character, error) {
			assert.LessOrEqual(t, len(writings), 2)
			out := make([]models.Character, len(writings))
			for i, w := range writings {
				out[i] = models.Character{Lang: lang, Writing: w}
			}
			return out, nil
		}).Times(3)

	require.NoError(t, q.PreloadNext(context.Background(), 0))

	q.mu.Lock()
	defer q.mu.Unlock()
	assert.Len(t, q.characters, 5)
}

func TestPreloadNext_CharacterFailure(t *testing.T) {
	f := newFixture(t, defaultSettings(), nil)
	q := f.queue
	a := newItem("a", models.PartDefinition, vocabNi.ID)
	q.put(a, false, true)

	f.remote.EXPECT().ItemDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req api.DetailRequest) (*api.DetailResponse, error) {
			resp, _ := echoDetails(a)(ctx, req)
			resp.Vocabs = []models.Vocab{vocabNi}
			return resp, nil
		})
	f.remote.EXPECT().Characters(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	assert.Error(t, q.PreloadNext(context.Background(), 0))
	loaded, _ := q.state("a")
	assert.True(t, loaded)
	assert.Equal(t, Idle, q.preloading.current())
}
