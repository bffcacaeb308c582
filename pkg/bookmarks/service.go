package bookmarks

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// Service persists bookmarks in a flat JSON file next to the database.
// Bookmarks are the lightest annotation and survive a storage clear, so they
// deliberately live outside the store's collections.
type Service struct {
	filePath string

	mu sync.Mutex
}

func NewService(dataDirectory string) *Service {
	return &Service{
		filePath: filepath.Join(dataDirectory, "bookmarks.json"),
	}
}

func (svc *Service) load() ([]models.Bookmark, error) {
	data, err := os.ReadFile(svc.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// File doesn't exist yet, no bookmarks.
			return []models.Bookmark{}, nil
		}
		return nil, errors.WithStack(err)
	}

	bookmarks := []models.Bookmark{}
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, errors.WithStack(err)
	}

	return bookmarks, nil
}

func (svc *Service) save(bookmarks []models.Bookmark) error {
	if err := os.MkdirAll(filepath.Dir(svc.filePath), 0755); err != nil {
		return errors.WithStack(err)
	}

	data, err := json.MarshalIndent(bookmarks, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	err = os.WriteFile(svc.filePath, data, 0644) //nolint:gosec
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Toggle adds a bookmark on a verse, or removes it when the verse is already
// bookmarked. It returns the bookmark and whether the verse is bookmarked
// after the call.
func (svc *Service) Toggle(ref models.VerseRef, text string) (*models.Bookmark, bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	bookmarks, err := svc.load()
	if err != nil {
		return nil, false, err
	}

	for i, b := range bookmarks {
		if b.Ref() == ref {
			removed := b
			bookmarks = append(bookmarks[:i], bookmarks[i+1:]...)
			if err := svc.save(bookmarks); err != nil {
				return nil, false, err
			}
			return &removed, false, nil
		}
	}

	bookmark := models.Bookmark{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Text:         text,
		Timestamp:    time.Now(),
	}
	bookmarks = append(bookmarks, bookmark)
	if err := svc.save(bookmarks); err != nil {
		return nil, false, err
	}

	return &bookmark, true, nil
}

// List returns every bookmark, newest first.
func (svc *Service) List() ([]models.Bookmark, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	bookmarks, err := svc.load()
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(bookmarks)-1; i < j; i, j = i+1, j-1 {
		bookmarks[i], bookmarks[j] = bookmarks[j], bookmarks[i]
	}

	return bookmarks, nil
}
