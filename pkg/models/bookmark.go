package models

import "time"

// Bookmark lives in a flat JSON file next to the database rather than in a
// store collection. Toggling an already-bookmarked verse removes it.
type Bookmark struct {
	LanguageCode string    `json:"language_code"`
	BookID       string    `json:"book_id"`
	Chapter      int       `json:"chapter"`
	Verse        int       `json:"verse"`
	Text         string    `json:"text"`
	Timestamp    time.Time `json:"timestamp"`
}

func (b Bookmark) Ref() VerseRef {
	return VerseRef{
		LanguageCode: b.LanguageCode,
		BookID:       b.BookID,
		Chapter:      b.Chapter,
		Verse:        b.Verse,
	}
}
