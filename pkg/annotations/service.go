package annotations

import (
	"context"

	"github.com/lecternapp/lectern/pkg/models"
	"github.com/lecternapp/lectern/pkg/store"
)

// ChapterAnnotations bundles everything the reader overlays onto one
// chapter's text.
type ChapterAnnotations struct {
	Highlights []*models.Highlight `json:"highlights"`
	Notes      []*models.Note      `json:"notes"`
}

// Service manages verse annotations. Highlights and notes are keyed by the
// verse they target, never by record id: annotating an annotated verse
// replaces the existing record.
type Service struct {
	store *store.Service
}

func NewService(storeService *store.Service) *Service {
	return &Service{storeService}
}

// LoadForChapter returns the highlights and notes overlapping one chapter.
func (svc *Service) LoadForChapter(ctx context.Context, languageCode, bookID string, chapter int) (*ChapterAnnotations, error) {
	opts := store.ListAnnotationsOptions{
		LanguageCode: &languageCode,
		BookID:       &bookID,
		Chapter:      &chapter,
	}

	highlights, err := svc.store.ListHighlights(ctx, opts)
	if err != nil {
		return nil, err
	}

	notes, err := svc.store.ListNotes(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &ChapterAnnotations{Highlights: highlights, Notes: notes}, nil
}

// UpsertHighlight sets the highlight color for a verse, replacing any
// existing highlight on it.
func (svc *Service) UpsertHighlight(ctx context.Context, ref models.VerseRef, color string) (*models.Highlight, error) {
	highlight := &models.Highlight{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Color:        color,
	}
	if err := svc.store.PutHighlight(ctx, highlight); err != nil {
		return nil, err
	}
	return highlight, nil
}

func (svc *Service) RemoveHighlight(ctx context.Context, ref models.VerseRef) error {
	return svc.store.DeleteHighlight(ctx, ref)
}

// UpsertNote sets the note text for a verse. The stored record keeps the
// original created_at when the verse already had a note.
func (svc *Service) UpsertNote(ctx context.Context, ref models.VerseRef, text string) (*models.Note, error) {
	note := &models.Note{
		LanguageCode: ref.LanguageCode,
		BookID:       ref.BookID,
		Chapter:      ref.Chapter,
		Verse:        ref.Verse,
		Text:         text,
	}
	if err := svc.store.PutNote(ctx, note); err != nil {
		return nil, err
	}
	return svc.store.RetrieveNote(ctx, ref)
}

func (svc *Service) RemoveNote(ctx context.Context, ref models.VerseRef) error {
	return svc.store.DeleteNote(ctx, ref)
}
