package library

import (
	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/config"
	"github.com/lecternapp/lectern/pkg/content"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the reading routes on the server root.
func RegisterRoutes(e *echo.Echo, db *bun.DB, cfg *config.Config) {
	storeService := store.NewService(db)
	contentClient := content.NewClient(cfg.ContentBaseURL)
	libraryService := NewService(storeService, contentClient, cfg.DownloadDelay)

	h := &handler{
		libraryService: libraryService,
	}

	e.GET("/languages", h.listLanguages)
	e.GET("/languages/:code/books", h.listBooks)
	e.GET("/languages/:code/books/:file", h.retrieveBook)
	e.GET("/parallel", h.loadParallel)
}
