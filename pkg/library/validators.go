package library

type LoadParallelQuery struct {
	Languages []string `query:"language" json:"languages" validate:"required,min=1,max=8,dive,min=2,max=8"`
	File      string   `query:"file" json:"file" validate:"required"`
	Chapter   int      `query:"chapter" json:"chapter" validate:"required,min=1"`
}
