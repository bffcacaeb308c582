package bookmarks

type TogglePayload struct {
	LanguageCode string `json:"language_code" validate:"required,min=2,max=8"`
	BookID       string `json:"book_id" validate:"required"`
	Chapter      int    `json:"chapter" validate:"required,min=1"`
	Verse        int    `json:"verse" validate:"required,min=1"`
	Text         string `json:"text" validate:"max=1000"`
}
