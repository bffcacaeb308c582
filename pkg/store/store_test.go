package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lecternapp/lectern/pkg/errcodes"
	"github.com/lecternapp/lectern/pkg/migrations"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func genesisDocument() *models.BookDocument {
	return &models.BookDocument{
		Book: "Genesis",
		Chapters: []*models.Chapter{
			{Chapter: 1, Verses: []*models.Verse{
				{Verse: 1, Text: "In the beginning"},
				{Verse: 2, Text: "And the earth was without form"},
			}},
		},
	}
}

func TestBookRoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	book := &models.CachedBook{
		LanguageCode:   "en",
		FileName:       "Genesis.json",
		Title:          "Genesis",
		DocumentParsed: genesisDocument(),
	}
	err := svc.PutBook(ctx, book)
	require.NoError(t, err)

	got, err := svc.RetrieveBook(ctx, RetrieveBookOptions{LanguageCode: "en", FileName: "Genesis.json"})
	require.NoError(t, err)
	assert.Equal(t, "Genesis", got.Title)
	require.NotNil(t, got.DocumentParsed)
	require.Len(t, got.DocumentParsed.Chapters, 1)
	assert.Equal(t, "In the beginning", got.DocumentParsed.Chapters[0].Verses[0].Text)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRetrieveBook_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))

	got, err := svc.RetrieveBook(context.Background(), RetrieveBookOptions{LanguageCode: "en", FileName: "Missing.json"})
	assert.Nil(t, got)

	var e *errcodes.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "not_found", e.Code)
}

func TestPutBook_ReplacesExisting(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	err := svc.PutBook(ctx, &models.CachedBook{
		LanguageCode:   "en",
		FileName:       "Genesis.json",
		Title:          "Genesis",
		DocumentParsed: genesisDocument(),
	})
	require.NoError(t, err)

	updated := genesisDocument()
	updated.Chapters[0].Verses[0].Text = "revised"
	err = svc.PutBook(ctx, &models.CachedBook{
		LanguageCode:   "en",
		FileName:       "Genesis.json",
		Title:          "Genesis",
		DocumentParsed: updated,
	})
	require.NoError(t, err)

	books, err := svc.ListBooks(ctx, ListBooksOptions{})
	require.NoError(t, err)
	require.Len(t, books, 1, "re-putting the same book should not add a row")

	got, err := svc.RetrieveBook(ctx, RetrieveBookOptions{LanguageCode: "en", FileName: "Genesis.json"})
	require.NoError(t, err)
	assert.Equal(t, "revised", got.DocumentParsed.Chapters[0].Verses[0].Text)
}

func TestListBooks_FiltersByLanguage(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	for _, lang := range []string{"en", "es"} {
		err := svc.PutBook(ctx, &models.CachedBook{
			LanguageCode:   lang,
			FileName:       "Genesis.json",
			Title:          "Genesis",
			DocumentParsed: genesisDocument(),
		})
		require.NoError(t, err)
	}

	lang := "es"
	books, err := svc.ListBooks(ctx, ListBooksOptions{LanguageCode: &lang})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "es", books[0].LanguageCode)
}

func TestLanguagesRoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	err := svc.PutLanguages(ctx, []*models.Language{
		{Code: "en", Name: "English", NativeName: "English", BookCount: 66},
		{Code: "es", Name: "Spanish", NativeName: "Español", BookCount: 66},
	})
	require.NoError(t, err)

	// Re-putting with changed data updates in place.
	err = svc.PutLanguages(ctx, []*models.Language{
		{Code: "en", Name: "English", NativeName: "English", BookCount: 27},
	})
	require.NoError(t, err)

	langs, err := svc.ListLanguages(ctx)
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, 27, langs[0].BookCount)
}

func TestPutHighlight_UpsertsByVerse(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	ref := models.VerseRef{LanguageCode: "en", BookID: "jhn", Chapter: 3, Verse: 16}

	first := &models.Highlight{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Color:        models.HighlightColorYellow,
	}
	err := svc.PutHighlight(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second := &models.Highlight{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Color:        models.HighlightColorGreen,
	}
	err = svc.PutHighlight(ctx, second)
	require.NoError(t, err)

	highlights, err := svc.ListHighlights(ctx, ListAnnotationsOptions{})
	require.NoError(t, err)
	require.Len(t, highlights, 1, "same verse should hold at most one highlight")
	assert.Equal(t, models.HighlightColorGreen, highlights[0].Color)
	assert.Equal(t, second.ID, highlights[0].ID)
	assert.NotEqual(t, first.ID, highlights[0].ID)
}

func TestDeleteHighlight(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	ref := models.VerseRef{LanguageCode: "en", BookID: "psa", Chapter: 23, Verse: 1}
	err := svc.PutHighlight(ctx, &models.Highlight{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Color:        models.HighlightColorBlue,
	})
	require.NoError(t, err)

	err = svc.DeleteHighlight(ctx, ref)
	require.NoError(t, err)

	highlights, err := svc.ListHighlights(ctx, ListAnnotationsOptions{})
	require.NoError(t, err)
	assert.Empty(t, highlights)

	// Deleting a missing highlight is a no-op.
	err = svc.DeleteHighlight(ctx, ref)
	require.NoError(t, err)
}

func TestPutNote_PreservesCreatedAt(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	ref := models.VerseRef{LanguageCode: "en", BookID: "rom", Chapter: 8, Verse: 28}

	first := &models.Note{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Text:         "first draft",
	}
	err := svc.PutNote(ctx, first)
	require.NoError(t, err)

	second := &models.Note{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Text:         "second draft",
	}
	err = svc.PutNote(ctx, second)
	require.NoError(t, err)

	got, err := svc.RetrieveNote(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, "second draft", got.Text)
	assert.Equal(t, first.CreatedAt.Unix(), got.CreatedAt.Unix(), "editing a note keeps its original created_at")

	notes, err := svc.ListNotes(ctx, ListAnnotationsOptions{})
	require.NoError(t, err)
	require.Len(t, notes, 1)
}

func TestListAnnotations_ScopedToChapter(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	refs := []models.VerseRef{
		{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 1},
		{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 3},
		{LanguageCode: "en", BookID: "gen", Chapter: 2, Verse: 7},
	}
	for _, ref := range refs {
		err := svc.PutHighlight(ctx, &models.Highlight{
			LanguageCode: ref.LanguageCode,
			BookID:       ref.BookID,
			Chapter:      ref.Chapter,
			Verse:        ref.Verse,
			Color:        models.HighlightColorPink,
		})
		require.NoError(t, err)
	}

	lang := "en"
	bookID := "gen"
	chapter := 2
	highlights, err := svc.ListHighlights(ctx, ListAnnotationsOptions{
		LanguageCode: &lang,
		BookID:       &bookID,
		Chapter:      &chapter,
	})
	require.NoError(t, err)
	require.Len(t, highlights, 1)
	assert.Equal(t, 2, highlights[0].Chapter)
}

func TestReadingPlanRoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	plan := &models.ReadingPlan{
		PlanID:              "chronological-90",
		CompletedDaysParsed: []int{1, 2},
		CurrentDay:          3,
	}
	err := svc.PutReadingPlan(ctx, plan)
	require.NoError(t, err)

	got, err := svc.RetrieveReadingPlan(ctx, "chronological-90")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.CompletedDaysParsed)
	assert.Equal(t, 3, got.CurrentDay)
	assert.False(t, got.StartedAt.IsZero())

	err = svc.DeleteReadingPlan(ctx, "chronological-90")
	require.NoError(t, err)

	_, err = svc.RetrieveReadingPlan(ctx, "chronological-90")
	require.Error(t, err)
}

func TestClear_EmptiesEveryCollection(t *testing.T) {
	t.Parallel()
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	err := svc.PutBook(ctx, &models.CachedBook{
		LanguageCode:   "en",
		FileName:       "Genesis.json",
		Title:          "Genesis",
		DocumentParsed: genesisDocument(),
	})
	require.NoError(t, err)
	err = svc.PutLanguages(ctx, []*models.Language{{Code: "en", Name: "English", NativeName: "English", BookCount: 66}})
	require.NoError(t, err)
	err = svc.PutHighlight(ctx, &models.Highlight{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 1, Color: models.HighlightColorYellow})
	require.NoError(t, err)
	err = svc.PutNote(ctx, &models.Note{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 1, Text: "note"})
	require.NoError(t, err)
	err = svc.PutReadingPlan(ctx, &models.ReadingPlan{PlanID: "plan-1"})
	require.NoError(t, err)

	err = svc.Clear(ctx)
	require.NoError(t, err)

	books, err := svc.ListBooks(ctx, ListBooksOptions{})
	require.NoError(t, err)
	assert.Empty(t, books)

	langs, err := svc.ListLanguages(ctx)
	require.NoError(t, err)
	assert.Empty(t, langs)

	highlights, err := svc.ListHighlights(ctx, ListAnnotationsOptions{})
	require.NoError(t, err)
	assert.Empty(t, highlights)

	notes, err := svc.ListNotes(ctx, ListAnnotationsOptions{})
	require.NoError(t, err)
	assert.Empty(t, notes)

	plans, err := svc.ListReadingPlans(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
}
