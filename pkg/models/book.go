package models

import (
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/uptrace/bun"
)

const (
	TestamentOld = "old"
	TestamentNew = "new"
)

// BookMetadata describes one entry of a language's book catalogue. The
// catalogue is assumed structurally identical across languages; only the
// text differs, so it is not versioned per language.
type BookMetadata struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	File         string `json:"file"`
	Testament    string `json:"testament"`
	ChapterCount int    `json:"chapters"`
}

// BookDocument is the full chapter/verse text of one book in one language,
// exactly as served by the content service.
type BookDocument struct {
	Book     string     `json:"book"`
	Chapters []*Chapter `json:"chapters"`
}

type Chapter struct {
	Chapter int      `json:"chapter"`
	Verses  []*Verse `json:"verses"`
}

type Verse struct {
	Verse int    `json:"verse"`
	Text  string `json:"text"`
}

// FindChapter returns the chapter with the given number, or nil if the
// document has no such chapter.
func (d *BookDocument) FindChapter(number int) *Chapter {
	for _, ch := range d.Chapters {
		if ch.Chapter == number {
			return ch
		}
	}
	return nil
}

// CachedBook is one BookDocument mirrored into the offline store. Documents
// are immutable once stored; a re-fetch replaces the row wholesale.
type CachedBook struct {
	bun.BaseModel `bun:"table:books,alias:bk"`

	LanguageCode   string        `bun:",pk" json:"language_code"`
	FileName       string        `bun:",pk" json:"file_name"`
	Title          string        `bun:",nullzero" json:"title"`
	Document       string        `bun:",nullzero" json:"-"`
	DocumentParsed *BookDocument `bun:"-" json:"document,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// MarshalDocument serializes DocumentParsed into the Document column so the
// row can be written.
func (b *CachedBook) MarshalDocument() error {
	data, err := json.Marshal(b.DocumentParsed)
	if err != nil {
		return errors.WithStack(err)
	}
	b.Document = string(data)
	return nil
}

// UnmarshalDocument parses the stored Document column into DocumentParsed.
func (b *CachedBook) UnmarshalDocument() error {
	b.DocumentParsed = &BookDocument{}
	err := json.Unmarshal([]byte(b.Document), b.DocumentParsed)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
