package models

import (
	"github.com/uptrace/bun"
)

// Language is static reference data persisted as a convenience cache so the
// language picker works with zero network round trips.
type Language struct {
	bun.BaseModel `bun:"table:languages,alias:lg"`

	Code       string `bun:",pk" json:"code"`
	Name       string `bun:",nullzero" json:"name"`
	NativeName string `bun:",nullzero" json:"native_name"`
	BookCount  int    `json:"book_count"`
}
