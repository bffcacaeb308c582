package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	HighlightColorYellow = "yellow"
	HighlightColorGreen  = "green"
	HighlightColorBlue   = "blue"
	HighlightColorPink   = "pink"
	HighlightColorPurple = "purple"
)

// Highlight marks one verse with a color. At most one highlight exists per
// verse ref; a new highlight on the same verse replaces the prior one.
type Highlight struct {
	bun.BaseModel `bun:"table:highlights,alias:hl"`

	ID           string    `bun:",pk,nullzero" json:"id"`
	LanguageCode string    `bun:",nullzero" json:"language_code"`
	BookID       string    `bun:",nullzero" json:"book_id"`
	Chapter      int       `bun:",notnull" json:"chapter"`
	Verse        int       `bun:",notnull" json:"verse"`
	Color        string    `bun:",nullzero" json:"color"`
	CreatedAt    time.Time `json:"created_at"`
}

func (h *Highlight) Ref() VerseRef {
	return VerseRef{
		LanguageCode: h.LanguageCode,
		BookID:       h.BookID,
		Chapter:      h.Chapter,
		Verse:        h.Verse,
	}
}
