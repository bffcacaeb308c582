package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lecternapp/lectern/pkg/annotations"
	"github.com/lecternapp/lectern/pkg/binder"
	"github.com/lecternapp/lectern/pkg/bookmarks"
	"github.com/lecternapp/lectern/pkg/config"
	"github.com/lecternapp/lectern/pkg/errcodes"
	"github.com/lecternapp/lectern/pkg/jobs"
	"github.com/lecternapp/lectern/pkg/library"
	"github.com/lecternapp/lectern/pkg/readingplans"
	"github.com/lecternapp/lectern/pkg/storagerep"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	// Reading routes live at the root.
	library.RegisterRoutes(e, db, cfg)

	annotations.RegisterRoutesWithGroup(e.Group("/annotations"), db)
	bookmarks.RegisterRoutesWithGroup(e.Group("/bookmarks"), bookmarks.NewService(cfg.DataDirectory))
	readingplans.RegisterRoutesWithGroup(e.Group("/reading-plans"), db)
	jobs.RegisterRoutesWithGroup(e.Group("/jobs"), db)
	storagerep.RegisterRoutesWithGroup(e.Group("/storage"), db, cfg)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
