package bookmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lecternapp/lectern/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_AddsThenRemoves(t *testing.T) {
	t.Parallel()
	svc := NewService(t.TempDir())

	ref := models.VerseRef{LanguageCode: "en", BookID: "jhn", Chapter: 3, Verse: 16}

	bookmark, bookmarked, err := svc.Toggle(ref, "For God so loved the world")
	require.NoError(t, err)
	assert.True(t, bookmarked)
	require.NotNil(t, bookmark)
	assert.Equal(t, "For God so loved the world", bookmark.Text)
	assert.False(t, bookmark.Timestamp.IsZero())

	bookmarks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)

	// Toggling the same verse removes it.
	_, bookmarked, err = svc.Toggle(ref, "")
	require.NoError(t, err)
	assert.False(t, bookmarked)

	bookmarks, err = svc.List()
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestToggle_DistinctVersesAccumulate(t *testing.T) {
	t.Parallel()
	svc := NewService(t.TempDir())

	refs := []models.VerseRef{
		{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 1},
		{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 2},
		{LanguageCode: "es", BookID: "gen", Chapter: 1, Verse: 1},
	}
	for _, ref := range refs {
		_, bookmarked, err := svc.Toggle(ref, "text")
		require.NoError(t, err)
		assert.True(t, bookmarked)
	}

	bookmarks, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, bookmarks, 3, "the same verse in another language is a separate bookmark")
}

func TestList_NewestFirst(t *testing.T) {
	t.Parallel()
	svc := NewService(t.TempDir())

	_, _, err := svc.Toggle(models.VerseRef{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 1}, "first")
	require.NoError(t, err)
	_, _, err = svc.Toggle(models.VerseRef{LanguageCode: "en", BookID: "gen", Chapter: 1, Verse: 2}, "second")
	require.NoError(t, err)

	bookmarks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "second", bookmarks[0].Text)
}

func TestService_SurvivesRestart(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	svc := NewService(dir)
	_, _, err := svc.Toggle(models.VerseRef{LanguageCode: "en", BookID: "psa", Chapter: 23, Verse: 1}, "The Lord is my shepherd")
	require.NoError(t, err)

	// A fresh service over the same directory sees the same file.
	again := NewService(dir)
	bookmarks, err := again.List()
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "The Lord is my shepherd", bookmarks[0].Text)

	_, err = os.Stat(filepath.Join(dir, "bookmarks.json"))
	require.NoError(t, err)
}

func TestList_EmptyWithoutFile(t *testing.T) {
	t.Parallel()
	svc := NewService(t.TempDir())

	bookmarks, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}
