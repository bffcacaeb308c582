package annotations

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	annotationService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := ListAnnotationsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	annotations, err := h.annotationService.LoadForChapter(ctx, params.LanguageCode, params.BookID, params.Chapter)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, annotations))
}

func (h *handler) upsertHighlight(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := UpsertHighlightPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	highlight, err := h.annotationService.UpsertHighlight(ctx, models.VerseRef{
		LanguageCode: params.LanguageCode,
		BookID:       params.BookID,
		Chapter:      params.Chapter,
		Verse:        params.Verse,
	}, params.Color)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, highlight))
}

func (h *handler) removeHighlight(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := RemoveAnnotationPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	err := h.annotationService.RemoveHighlight(ctx, models.VerseRef{
		LanguageCode: params.LanguageCode,
		BookID:       params.BookID,
		Chapter:      params.Chapter,
		Verse:        params.Verse,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}

func (h *handler) upsertNote(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := UpsertNotePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.annotationService.UpsertNote(ctx, models.VerseRef{
		LanguageCode: params.LanguageCode,
		BookID:       params.BookID,
		Chapter:      params.Chapter,
		Verse:        params.Verse,
	}, params.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, note))
}

func (h *handler) removeNote(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := RemoveAnnotationPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	err := h.annotationService.RemoveNote(ctx, models.VerseRef{
		LanguageCode: params.LanguageCode,
		BookID:       params.BookID,
		Chapter:      params.Chapter,
		Verse:        params.Verse,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}
