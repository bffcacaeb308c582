package models

// VerseRef is the composite key identifying one verse's position for
// annotation purposes. Annotations are unique per ref, not per record id.
type VerseRef struct {
	LanguageCode string `json:"language_code"`
	BookID       string `json:"book_id"`
	Chapter      int    `json:"chapter"`
	Verse        int    `json:"verse"`
}
