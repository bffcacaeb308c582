package storagerep

import (
	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/config"
	"github.com/lecternapp/lectern/pkg/jobs"
	"github.com/lecternapp/lectern/pkg/store"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers storage routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, cfg *config.Config) {
	storageService := NewService(cfg.DataDirectory, cfg.StorageQuotaBytes, store.NewService(db), jobs.NewService(db))

	h := &handler{
		storageService: storageService,
	}

	g.GET("/estimate", h.estimate)
	g.POST("/clear", h.clear)
}
