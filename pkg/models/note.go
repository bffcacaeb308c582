package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Note is free-form text attached to one verse. Like highlights, notes are
// unique per verse ref; editing preserves created_at and bumps updated_at.
type Note struct {
	bun.BaseModel `bun:"table:notes,alias:nt"`

	ID           string    `bun:",pk,nullzero" json:"id"`
	LanguageCode string    `bun:",nullzero" json:"language_code"`
	BookID       string    `bun:",nullzero" json:"book_id"`
	Chapter      int       `bun:",notnull" json:"chapter"`
	Verse        int       `bun:",notnull" json:"verse"`
	Text         string    `bun:",nullzero" json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (n *Note) Ref() VerseRef {
	return VerseRef{
		LanguageCode: n.LanguageCode,
		BookID:       n.BookID,
		Chapter:      n.Chapter,
		Verse:        n.Verse,
	}
}
