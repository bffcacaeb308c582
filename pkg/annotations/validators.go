package annotations

type ListAnnotationsQuery struct {
	LanguageCode string `query:"language_code" json:"language_code" validate:"required,min=2,max=8"`
	BookID       string `query:"book_id" json:"book_id" validate:"required"`
	Chapter      int    `query:"chapter" json:"chapter" validate:"required,min=1"`
}

type UpsertHighlightPayload struct {
	LanguageCode string `json:"language_code" validate:"required,min=2,max=8"`
	BookID       string `json:"book_id" validate:"required"`
	Chapter      int    `json:"chapter" validate:"required,min=1"`
	Verse        int    `json:"verse" validate:"required,min=1"`
	Color        string `json:"color" validate:"required,oneof=yellow green blue pink purple"`
}

type UpsertNotePayload struct {
	LanguageCode string `json:"language_code" validate:"required,min=2,max=8"`
	BookID       string `json:"book_id" validate:"required"`
	Chapter      int    `json:"chapter" validate:"required,min=1"`
	Verse        int    `json:"verse" validate:"required,min=1"`
	Text         string `json:"text" validate:"required,max=10000"`
}

type RemoveAnnotationPayload struct {
	LanguageCode string `json:"language_code" validate:"required,min=2,max=8"`
	BookID       string `json:"book_id" validate:"required"`
	Chapter      int    `json:"chapter" validate:"required,min=1"`
	Verse        int    `json:"verse" validate:"required,min=1"`
}
