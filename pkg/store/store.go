package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lecternapp/lectern/pkg/errcodes"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	LanguageCode string
	FileName     string
}

type ListBooksOptions struct {
	LanguageCode *string
}

type RetrieveHighlightOptions struct {
	Ref *models.VerseRef
}

type ListAnnotationsOptions struct {
	LanguageCode *string
	BookID       *string
	Chapter      *int
}

// Service is the durable offline store. Every collection the reader depends
// on when offline (book documents, languages, highlights, notes, reading
// plans) lives behind it in a single sqlite database.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// DB exposes the underlying handle for services that need their own queries
// (jobs) and for transaction scoping in tests.
func (svc *Service) DB() *bun.DB {
	return svc.db
}

// PutBook writes a book document into the cache, replacing any prior copy
// for the same language + file.
func (svc *Service) PutBook(ctx context.Context, book *models.CachedBook) error {
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now()
	}
	if book.DocumentParsed != nil {
		if err := book.MarshalDocument(); err != nil {
			return err
		}
	}

	_, err := svc.db.
		NewInsert().
		Model(book).
		On("CONFLICT (language_code, file_name) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("document = EXCLUDED.document").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.CachedBook, error) {
	book := &models.CachedBook{}

	err := svc.db.
		NewSelect().
		Model(book).
		Where("bk.language_code = ?", opts.LanguageCode).
		Where("bk.file_name = ?", opts.FileName).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Book")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := book.UnmarshalDocument(); err != nil {
		return nil, err
	}

	return book, nil
}

// ListBooks returns cached books without their documents. It backs the
// "what do I already have offline" views, so loading full text for every
// row would be wasteful.
func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.CachedBook, error) {
	books := []*models.CachedBook{}

	q := svc.db.
		NewSelect().
		Model(&books).
		ExcludeColumn("document").
		Order("language_code", "file_name")
	if opts.LanguageCode != nil {
		q = q.Where("bk.language_code = ?", *opts.LanguageCode)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

func (svc *Service) DeleteBook(ctx context.Context, languageCode, fileName string) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.CachedBook)(nil)).
		Where("language_code = ?", languageCode).
		Where("file_name = ?", fileName).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// PutLanguages writes the language reference data, replacing existing rows
// by code.
func (svc *Service) PutLanguages(ctx context.Context, languages []*models.Language) error {
	if len(languages) == 0 {
		return nil
	}

	_, err := svc.db.
		NewInsert().
		Model(&languages).
		On("CONFLICT (code) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("native_name = EXCLUDED.native_name").
		Set("book_count = EXCLUDED.book_count").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) ListLanguages(ctx context.Context) ([]*models.Language, error) {
	languages := []*models.Language{}

	err := svc.db.
		NewSelect().
		Model(&languages).
		Order("code").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return languages, nil
}

// PutHighlight inserts or replaces the highlight for the verse it targets.
// Highlighting an already-highlighted verse swaps the record wholesale: new
// id, new color, new created_at.
func (svc *Service) PutHighlight(ctx context.Context, highlight *models.Highlight) error {
	if highlight.ID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return errors.WithStack(err)
		}
		highlight.ID = id.String()
	}
	if highlight.CreatedAt.IsZero() {
		highlight.CreatedAt = time.Now()
	}

	_, err := svc.db.
		NewInsert().
		Model(highlight).
		On("CONFLICT (language_code, book_id, chapter, verse) DO UPDATE").
		Set("id = EXCLUDED.id").
		Set("color = EXCLUDED.color").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveHighlight(ctx context.Context, opts RetrieveHighlightOptions) (*models.Highlight, error) {
	highlight := &models.Highlight{}

	q := svc.db.
		NewSelect().
		Model(highlight)
	if opts.Ref != nil {
		q = q.
			Where("hl.language_code = ?", opts.Ref.LanguageCode).
			Where("hl.book_id = ?", opts.Ref.BookID).
			Where("hl.chapter = ?", opts.Ref.Chapter).
			Where("hl.verse = ?", opts.Ref.Verse)
	}

	err := q.Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Highlight")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	return highlight, nil
}

func (svc *Service) ListHighlights(ctx context.Context, opts ListAnnotationsOptions) ([]*models.Highlight, error) {
	highlights := []*models.Highlight{}

	q := svc.db.
		NewSelect().
		Model(&highlights).
		Order("chapter", "verse")
	if opts.LanguageCode != nil {
		q = q.Where("hl.language_code = ?", *opts.LanguageCode)
	}
	if opts.BookID != nil {
		q = q.Where("hl.book_id = ?", *opts.BookID)
	}
	if opts.Chapter != nil {
		q = q.Where("hl.chapter = ?", *opts.Chapter)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return highlights, nil
}

func (svc *Service) DeleteHighlight(ctx context.Context, ref models.VerseRef) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.Highlight)(nil)).
		Where("language_code = ?", ref.LanguageCode).
		Where("book_id = ?", ref.BookID).
		Where("chapter = ?", ref.Chapter).
		Where("verse = ?", ref.Verse).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// PutNote inserts or updates the note for the verse it targets. Unlike
// highlights, editing a note keeps its original created_at; only the text,
// id, and updated_at change.
func (svc *Service) PutNote(ctx context.Context, note *models.Note) error {
	now := time.Now()
	if note.ID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return errors.WithStack(err)
		}
		note.ID = id.String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	_, err := svc.db.
		NewInsert().
		Model(note).
		On("CONFLICT (language_code, book_id, chapter, verse) DO UPDATE").
		Set("id = EXCLUDED.id").
		Set("text = EXCLUDED.text").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveNote(ctx context.Context, ref models.VerseRef) (*models.Note, error) {
	note := &models.Note{}

	err := svc.db.
		NewSelect().
		Model(note).
		Where("nt.language_code = ?", ref.LanguageCode).
		Where("nt.book_id = ?", ref.BookID).
		Where("nt.chapter = ?", ref.Chapter).
		Where("nt.verse = ?", ref.Verse).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Note")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	return note, nil
}

func (svc *Service) ListNotes(ctx context.Context, opts ListAnnotationsOptions) ([]*models.Note, error) {
	notes := []*models.Note{}

	q := svc.db.
		NewSelect().
		Model(&notes).
		Order("chapter", "verse")
	if opts.LanguageCode != nil {
		q = q.Where("nt.language_code = ?", *opts.LanguageCode)
	}
	if opts.BookID != nil {
		q = q.Where("nt.book_id = ?", *opts.BookID)
	}
	if opts.Chapter != nil {
		q = q.Where("nt.chapter = ?", *opts.Chapter)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return notes, nil
}

func (svc *Service) DeleteNote(ctx context.Context, ref models.VerseRef) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.Note)(nil)).
		Where("language_code = ?", ref.LanguageCode).
		Where("book_id = ?", ref.BookID).
		Where("chapter = ?", ref.Chapter).
		Where("verse = ?", ref.Verse).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// PutReadingPlan writes a plan's full state keyed by plan id.
func (svc *Service) PutReadingPlan(ctx context.Context, plan *models.ReadingPlan) error {
	if plan.StartedAt.IsZero() {
		plan.StartedAt = time.Now()
	}
	if plan.CurrentDay == 0 {
		plan.CurrentDay = 1
	}
	if err := plan.MarshalCompletedDays(); err != nil {
		return err
	}

	_, err := svc.db.
		NewInsert().
		Model(plan).
		On("CONFLICT (plan_id) DO UPDATE").
		Set("completed_days = EXCLUDED.completed_days").
		Set("current_day = EXCLUDED.current_day").
		Set("notifications_enabled = EXCLUDED.notifications_enabled").
		Set("notification_time = EXCLUDED.notification_time").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveReadingPlan(ctx context.Context, planID string) (*models.ReadingPlan, error) {
	plan := &models.ReadingPlan{}

	err := svc.db.
		NewSelect().
		Model(plan).
		Where("rp.plan_id = ?", planID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Reading plan")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := plan.UnmarshalCompletedDays(); err != nil {
		return nil, err
	}

	return plan, nil
}

func (svc *Service) ListReadingPlans(ctx context.Context) ([]*models.ReadingPlan, error) {
	plans := []*models.ReadingPlan{}

	err := svc.db.
		NewSelect().
		Model(&plans).
		Order("started_at").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, plan := range plans {
		if err := plan.UnmarshalCompletedDays(); err != nil {
			return nil, err
		}
	}

	return plans, nil
}

func (svc *Service) DeleteReadingPlan(ctx context.Context, planID string) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.ReadingPlan)(nil)).
		Where("plan_id = ?", planID).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Clear empties every collection in one transaction. Either all of the
// offline data is gone or none of it is.
func (svc *Service) Clear(ctx context.Context) error {
	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range []interface{}{
			(*models.CachedBook)(nil),
			(*models.Language)(nil),
			(*models.Highlight)(nil),
			(*models.Note)(nil),
			(*models.ReadingPlan)(nil),
		} {
			_, err := tx.
				NewDelete().
				Model(model).
				Where("1 = 1").
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
