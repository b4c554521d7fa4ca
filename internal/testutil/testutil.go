// Package testutil provides shared test helpers for creating config files
// and seeded page fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/mushafapp/ghareeb/internal/database"
	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/mushaf"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"data", "overrides", "exports"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`database_file: %s
overrides_directory: %s
exports_directory: %s
`,
		filepath.Join(tmpDir, "data", "ghareeb.db"),
		filepath.Join(tmpDir, "overrides"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// OpenTestDB opens an in-memory database with the schema applied.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// FatihaPage is the first-page fixture shared across tests.
func FatihaPage() mushaf.PageText {
	return mushaf.PageText{
		PageNumber: 1,
		SurahName:  "الفاتحة",
		Text: "سورة الفاتحة\n" +
			"بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ ١\n" +
			"الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ ٢\n" +
			"اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ ٦\n" +
			"صِرَاطَ الَّذِينَ أَنْعَمْتَ عَلَيْهِمْ ٧",
	}
}

// FatihaEntries returns glossary entries matching FatihaPage.
func FatihaEntries() []glossary.Entry {
	return []glossary.Entry{
		{
			UniqueKey:   "1_2_4",
			PageNumber:  1,
			WordText:    "العالمين",
			Meaning:     "all created beings",
			SurahName:   "الفاتحة",
			SurahNumber: 1,
			VerseNumber: 2,
			WordIndex:   4,
			Order:       1,
		},
		{
			UniqueKey:   "1_6_2",
			PageNumber:  1,
			WordText:    "الصراط المستقيم",
			Meaning:     "the straight path",
			SurahName:   "الفاتحة",
			SurahNumber: 1,
			VerseNumber: 6,
			WordIndex:   2,
			Order:       2,
		},
		{
			UniqueKey:   "1_7_3",
			PageNumber:  1,
			WordText:    "أنعمت",
			Meaning:     "You bestowed favor",
			SurahName:   "الفاتحة",
			SurahNumber: 1,
			VerseNumber: 7,
			WordIndex:   3,
			Order:       3,
		},
	}
}

// SeedFatiha stores the FatihaPage fixture and its entries in db.
func SeedFatiha(t *testing.T, db *sqlx.DB) {
	t.Helper()

	ctx := context.Background()
	page := FatihaPage()
	require.NoError(t, mushaf.NewDBPageRepository(db).Upsert(ctx, &page))

	entryRepo := glossary.NewDBEntryRepository(db)
	for _, entry := range FatihaEntries() {
		require.NoError(t, entryRepo.Upsert(ctx, &entry))
	}
}
