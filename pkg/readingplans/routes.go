package readingplans

import (
	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers reading-plan routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	planService := NewService(store.NewService(db))

	h := &handler{
		planService: planService,
	}

	g.GET("", h.list)
	g.POST("", h.start)
	g.GET("/:id", h.retrieve)
	g.POST("/:id/complete-day", h.completeDay)
	g.POST("/:id/notifications", h.updateNotifications)
	g.DELETE("/:id", h.delete)
}
