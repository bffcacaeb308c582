package library

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	libraryService *Service
}

func (h *handler) listLanguages(c echo.Context) error {
	ctx := c.Request().Context()

	languages, err := h.libraryService.Languages(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Languages []*models.Language `json:"languages"`
	}{languages}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) listBooks(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.libraryService.AvailableBooks(ctx, c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Books []*models.BookMetadata `json:"books"`
	}{books}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) retrieveBook(c echo.Context) error {
	ctx := c.Request().Context()

	book, err := h.libraryService.LoadBook(ctx, c.Param("code"), c.Param("file"))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) loadParallel(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := LoadParallelQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	parallel, err := h.libraryService.LoadParallel(ctx, params.Languages, params.File, params.Chapter)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, parallel))
}
