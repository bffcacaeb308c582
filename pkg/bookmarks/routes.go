package bookmarks

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers bookmark routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, bookmarkService *Service) {
	h := &handler{
		bookmarkService: bookmarkService,
	}

	g.GET("", h.list)
	g.POST("/toggle", h.toggle)
}
