package mushaf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mushafapp/ghareeb/internal/database"
	"github.com/mushafapp/ghareeb/internal/mushaf"
)

func TestDBPageRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	repo := mushaf.NewDBPageRepository(db)

	t.Run("missing page is not an error", func(t *testing.T) {
		page, err := repo.FindByNumber(ctx, 604)
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("upsert and find", func(t *testing.T) {
		page := mushaf.PageText{
			PageNumber: 1,
			Text:       "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ ١",
			SurahName:  "الفاتحة",
		}
		require.NoError(t, repo.Upsert(ctx, &page))

		got, err := repo.FindByNumber(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, page, *got)
	})

	t.Run("upsert replaces the page wholesale", func(t *testing.T) {
		updated := mushaf.PageText{
			PageNumber: 1,
			Text:       "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ ٢",
			SurahName:  "الفاتحة",
		}
		require.NoError(t, repo.Upsert(ctx, &updated))

		got, err := repo.FindByNumber(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, updated.Text, got.Text)
	})

	t.Run("find all in page order", func(t *testing.T) {
		page2 := mushaf.PageText{PageNumber: 2, Text: "الم ١", SurahName: "البقرة"}
		require.NoError(t, repo.Upsert(ctx, &page2))

		pages, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, 1, pages[0].PageNumber)
		assert.Equal(t, 2, pages[1].PageNumber)
	})
}
