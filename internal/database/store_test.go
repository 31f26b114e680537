package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/srsqueue/pkg/models"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Connect(Config{Type: TypeSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestConnect_UnsupportedType(t *testing.T) {
	_, err := Connect(Config{Type: "mysql"})
	assert.Error(t, err)
}

func TestConnect_SchemaIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, initializeSchema(db))
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	items := []models.StudyItem{
		{ID: "u-zh-你-0-defn", Lang: "zh", Part: models.PartDefinition, Style: "simp", Last: 100, Next: 200, Interval: 100, Reviews: 2, Successes: 1, VocabIDs: []string{"zh-你"}},
		{ID: "u-ja-猫-0-rune", Lang: "ja", Part: models.PartRune},
	}
	vocabs := []models.Vocab{
		{ID: "zh-你", Lang: "zh", Writing: "你", Style: "simp", BannedParts: []models.Part{models.PartTone}, ContainedVocabIDs: []string{"zh-亻"}},
	}
	characters := []models.Character{
		{Lang: "zh", Writing: "你", Strokes: "M0 0"},
		{Lang: "ja", Writing: "猫", Strokes: "M1 1"},
	}

	require.NoError(t, store.SaveItems(ctx, items))
	require.NoError(t, store.SaveVocabs(ctx, vocabs))
	require.NoError(t, store.SaveCharacters(ctx, characters))

	snapshot, err := store.Load(ctx, "zh")
	require.NoError(t, err)
	assert.Equal(t, items[:1], snapshot.Items)
	assert.Equal(t, vocabs, snapshot.Vocabs)
	assert.Equal(t, characters[:1], snapshot.Characters)

	snapshot, err = store.Load(ctx, "ja")
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Nil(t, snapshot.Items[0].VocabIDs)
	assert.Empty(t, snapshot.Vocabs)
}

func TestStore_Upsert(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	item := models.StudyItem{ID: "a", Lang: "zh", Part: models.PartDefinition, Next: 10}
	require.NoError(t, store.SaveItems(ctx, []models.StudyItem{item}))

	item = item.Bump()
	item.Reviews = 3
	require.NoError(t, store.SaveItems(ctx, []models.StudyItem{item}))

	items, err := store.AllItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(10)+models.BumpSeconds, items[0].Next)
	assert.Equal(t, 3, items[0].Reviews)

	require.NoError(t, store.SaveCharacters(ctx, []models.Character{{Lang: "zh", Writing: "你", Strokes: "old"}}))
	require.NoError(t, store.SaveCharacters(ctx, []models.Character{{Lang: "zh", Writing: "你", Strokes: "new"}}))
	snapshot, err := store.Load(ctx, "zh")
	require.NoError(t, err)
	require.Len(t, snapshot.Characters, 1)
	assert.Equal(t, "new", snapshot.Characters[0].Strokes)
}

func TestStore_EmptySavesAreNoops(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	assert.NoError(t, store.SaveItems(ctx, nil))
	assert.NoError(t, store.SaveVocabs(ctx, nil))
	assert.NoError(t, store.SaveCharacters(ctx, nil))
}

func TestStore_Statistics(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	require.NoError(t, store.SaveItems(ctx, []models.StudyItem{
		{ID: "u-zh-a-0-defn", Lang: "zh", Part: models.PartDefinition, Last: 100, Next: 500, Reviews: 4, Successes: 3},
		{ID: "u-zh-b-0-defn", Lang: "zh", Part: models.PartDefinition, Last: 100, Next: 2000, Reviews: 2, Successes: 1},
		{ID: "u-zh-c-0-defn", Lang: "zh", Part: models.PartDefinition},
		{ID: "u-zh-d-0-rune", Lang: "zh", Part: models.PartRune, Last: 50, Next: 900, Reviews: 1, Successes: 1},
		{ID: "u-ja-e-0-rune", Lang: "ja", Part: models.PartRune, Last: 50, Next: 60, Reviews: 9},
	}))

	stats, err := store.Statistics(ctx, "zh", 1000)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, PartStats{Part: models.PartDefinition, Items: 3, Studied: 2, Due: 1, Reviews: 6, Successes: 4}, stats[0])
	assert.Equal(t, PartStats{Part: models.PartRune, Items: 1, Studied: 1, Due: 1, Reviews: 1, Successes: 1}, stats[1])
	assert.InDelta(t, 4.0/6.0, stats[0].Accuracy(), 1e-9)
	assert.Zero(t, PartStats{}.Accuracy())

	empty, err := store.Statistics(ctx, "ko", 1000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
