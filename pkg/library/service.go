package library

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/lecternapp/lectern/pkg/content"
	"github.com/lecternapp/lectern/pkg/errcodes"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

// DownloadProgress is reported after each book of a bulk download settles,
// whether it was fetched, already cached, or skipped on error.
type DownloadProgress struct {
	Current  int
	Total    int
	BookName string
}

type ProgressFunc func(DownloadProgress)

// ParallelVerse is one verse number with its text in every requested
// language that has it.
type ParallelVerse struct {
	Verse int               `json:"verse"`
	Texts map[string]string `json:"texts"`
}

// ParallelChapter is the side-by-side view of one chapter across languages.
type ParallelChapter struct {
	BookFile  string           `json:"book_file"`
	Chapter   int              `json:"chapter"`
	Languages []string         `json:"languages"`
	Verses    []*ParallelVerse `json:"verses"`
}

// Service coordinates between the remote content client and the offline
// store: reads go to the store first, fetches are written through, and bulk
// provisioning walks a language's catalogue sequentially.
type Service struct {
	store         *store.Service
	content       *content.Client
	downloadDelay time.Duration
}

func NewService(storeService *store.Service, contentClient *content.Client, downloadDelay time.Duration) *Service {
	return &Service{
		store:         storeService,
		content:       contentClient,
		downloadDelay: downloadDelay,
	}
}

// Languages returns the language list from the store, seeding it from the
// compiled-in reference data on first use.
func (svc *Service) Languages(ctx context.Context) ([]*models.Language, error) {
	languages, err := svc.store.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	if len(languages) > 0 {
		return languages, nil
	}

	languages = content.Languages()
	if err := svc.store.PutLanguages(ctx, languages); err != nil {
		return nil, err
	}

	return languages, nil
}

func (svc *Service) languageByCode(ctx context.Context, code string) (*models.Language, error) {
	languages, err := svc.Languages(ctx)
	if err != nil {
		return nil, err
	}
	for _, lang := range languages {
		if lang.Code == code {
			return lang, nil
		}
	}
	return nil, errcodes.NotFound("Language")
}

// AvailableBooks returns the catalogue for a language. Network failures are
// absorbed by the client's default-canon fallback, so this only errors on an
// unknown language.
func (svc *Service) AvailableBooks(ctx context.Context, languageCode string) ([]*models.BookMetadata, error) {
	if _, err := svc.languageByCode(ctx, languageCode); err != nil {
		return nil, err
	}
	return svc.content.FetchAvailableBooks(ctx, languageCode), nil
}

// LoadBook returns one book document, from the cache when present and
// write-through fetched otherwise. Fetch and store failures surface with the
// book name attached so the reader knows which load broke.
func (svc *Service) LoadBook(ctx context.Context, languageCode, fileName string) (*models.CachedBook, error) {
	book, err := svc.store.RetrieveBook(ctx, store.RetrieveBookOptions{
		LanguageCode: languageCode,
		FileName:     fileName,
	})
	if err == nil {
		return book, nil
	}
	if !errcodes.IsNotFound(err) {
		return nil, err
	}

	doc, err := svc.content.FetchBook(ctx, languageCode, fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", bookNameFromFile(fileName))
	}

	book = &models.CachedBook{
		LanguageCode:   languageCode,
		FileName:       fileName,
		Title:          doc.Book,
		DocumentParsed: doc,
	}
	if err := svc.store.PutBook(ctx, book); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", bookNameFromFile(fileName))
	}

	return book, nil
}

// DownloadLanguage provisions every book of a language for offline use. It
// walks the catalogue strictly sequentially with a fixed delay between
// requests, skips books already cached, and logs-and-skips individual fetch
// failures so one bad book doesn't strand the rest. Progress is reported
// after every book, including skipped ones. Cancelling the context stops the
// walk between books.
func (svc *Service) DownloadLanguage(ctx context.Context, languageCode string, progress ProgressFunc) error {
	if _, err := svc.languageByCode(ctx, languageCode); err != nil {
		return err
	}

	books := svc.content.FetchAvailableBooks(ctx, languageCode)
	total := len(books)
	log := logger.FromContext(ctx)

	for i, meta := range books {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		if i > 0 && svc.downloadDelay > 0 {
			select {
			case <-time.After(svc.downloadDelay):
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			}
		}

		cached, err := svc.store.RetrieveBook(ctx, store.RetrieveBookOptions{
			LanguageCode: languageCode,
			FileName:     meta.File,
		})
		if err == nil && cached != nil {
			reportProgress(progress, i+1, total, meta.Name)
			continue
		}

		doc, err := svc.content.FetchBook(ctx, languageCode, meta.File)
		if err != nil {
			log.Err(err).Warn("skipping book that failed to download", logger.Data{
				"language_code": languageCode,
				"file":          meta.File,
			})
			reportProgress(progress, i+1, total, meta.Name)
			continue
		}

		err = svc.store.PutBook(ctx, &models.CachedBook{
			LanguageCode:   languageCode,
			FileName:       meta.File,
			Title:          doc.Book,
			DocumentParsed: doc,
		})
		if err != nil {
			log.Err(err).Warn("skipping book that failed to persist", logger.Data{
				"language_code": languageCode,
				"file":          meta.File,
			})
		}

		reportProgress(progress, i+1, total, meta.Name)
	}

	return nil
}

func reportProgress(progress ProgressFunc, current, total int, bookName string) {
	if progress != nil {
		progress(DownloadProgress{Current: current, Total: total, BookName: bookName})
	}
}

// LoadParallel builds a side-by-side chapter view across languages. Each
// requested language's copy of the book is loaded (cache-first), then verses
// are zipped by verse number over the union of all verse numbers present. A
// verse missing from a translation is simply absent from that language's
// column rather than padded.
func (svc *Service) LoadParallel(ctx context.Context, languageCodes []string, fileName string, chapter int) (*ParallelChapter, error) {
	result := &ParallelChapter{
		BookFile:  fileName,
		Chapter:   chapter,
		Languages: languageCodes,
		Verses:    []*ParallelVerse{},
	}

	chapters := map[string]*models.Chapter{}
	verseNumbers := []int{}
	seen := map[int]bool{}

	for _, code := range languageCodes {
		book, err := svc.LoadBook(ctx, code, fileName)
		if err != nil {
			return nil, err
		}

		ch := book.DocumentParsed.FindChapter(chapter)
		if ch == nil {
			continue
		}
		chapters[code] = ch

		for _, v := range ch.Verses {
			if !seen[v.Verse] {
				seen[v.Verse] = true
				verseNumbers = append(verseNumbers, v.Verse)
			}
		}
	}

	sort.Ints(verseNumbers)

	for _, number := range verseNumbers {
		verse := &ParallelVerse{Verse: number, Texts: map[string]string{}}
		for _, code := range languageCodes {
			ch, ok := chapters[code]
			if !ok {
				continue
			}
			for _, v := range ch.Verses {
				if v.Verse == number {
					verse.Texts[code] = v.Text
					break
				}
			}
		}
		result.Verses = append(result.Verses, verse)
	}

	return result, nil
}


func bookNameFromFile(fileName string) string {
	return strings.TrimSuffix(fileName, ".json")
}
