package excel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/srsqueue/internal/database"
	"github.com/example/srsqueue/pkg/models"
)

type memItems struct {
	items   []models.StudyItem
	saveErr error
	saves   int
}

func (m *memItems) SaveItems(_ context.Context, items []models.StudyItem) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = append(m.items, items...)
	return nil
}

func (m *memItems) AllItems(context.Context) ([]models.StudyItem, error) {
	return m.items, nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportItems_CSV(t *testing.T) {
	path := writeFile(t, "items.csv", `id,lang,part,style,last,next,interval,reviews,successes,vocab_ids
u-zh-你-0-defn,zh,defn,simp,100,700,600,2,1,zh-你-0|zh-你-1
u-zh-好-0-rune,,rune,,,,,,,
,zh,defn,,,,,,,
u-zh-我-0-tone,zh,meaning,,,,,,,
u-zh-他-0-rdng,zh,rdng,,abc,,,,,
u-zh-她-0-rdng,zh,rdng,,,,,1,2,
u-zh-们-0-rdng,zh,rdng,,500,400,100,1,1,

`)
	store := &memItems{}

	result, err := ImportItems(context.Background(), store, ImportConfig{FilePath: path, Lang: "zh"})
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalProcessed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 5, result.Skipped)
	require.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors[0], "Row 4: missing id")
	assert.Contains(t, result.Errors[1], `invalid part "meaning"`)
	assert.Contains(t, result.Errors[2], "last:")
	assert.Contains(t, result.Errors[3], "exceed reviews")
	assert.Contains(t, result.Errors[4], "Row 8: next 400 is before last 500")

	require.Len(t, store.items, 2)
	assert.Equal(t, models.StudyItem{
		ID: "u-zh-你-0-defn", Lang: "zh", Part: models.PartDefinition, Style: "simp",
		Last: 100, Next: 700, Interval: 600, Reviews: 2, Successes: 1,
		VocabIDs: []string{"zh-你-0", "zh-你-1"},
	}, store.items[0])
	assert.Equal(t, "zh", store.items[1].Lang)
	assert.Nil(t, store.items[1].VocabIDs)
}

func TestImportItems_SaveFails(t *testing.T) {
	path := writeFile(t, "items.csv", "id,lang,part\nu-zh-你-0-defn,zh,defn\n")
	store := &memItems{saveErr: errors.New("disk full")}

	_, err := ImportItems(context.Background(), store, ImportConfig{FilePath: path})
	assert.ErrorContains(t, err, "disk full")
}

func TestImportItems_MissingFile(t *testing.T) {
	_, err := ImportItems(context.Background(), &memItems{}, ImportConfig{FilePath: filepath.Join(t.TempDir(), "none.xlsx")})
	assert.Error(t, err)
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Type: database.TypeSQLite, Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	src := database.NewStore(db)
	items := []models.StudyItem{
		{ID: "u-zh-你-0-defn", Lang: "zh", Part: models.PartDefinition, Style: "simp", Last: 1700000000, Next: 1700000600, Interval: 600, Reviews: 3, Successes: 2, VocabIDs: []string{"zh-你-0"}},
		{ID: "u-ja-猫-0-rune", Lang: "ja", Part: models.PartRune},
	}
	require.NoError(t, src.SaveItems(ctx, items))

	for _, sheet := range []string{"", "Items"} {
		t.Run("sheet "+sheet, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "items.xlsx")
			n, err := ExportItems(ctx, src, path, sheet)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			dst := &memItems{}
			result, err := ImportItems(ctx, dst, ImportConfig{FilePath: path, SheetName: sheet})
			require.NoError(t, err)
			assert.Empty(t, result.Errors)
			assert.Equal(t, 2, result.Imported)
			assert.ElementsMatch(t, items, dst.items)
		})
	}
}
