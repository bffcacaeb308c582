package annotations

import (
	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers annotation routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	annotationService := NewService(store.NewService(db))

	h := &handler{
		annotationService: annotationService,
	}

	g.GET("", h.list)
	g.PUT("/highlights", h.upsertHighlight)
	g.DELETE("/highlights", h.removeHighlight)
	g.PUT("/notes", h.upsertNote)
	g.DELETE("/notes", h.removeNote)
}
