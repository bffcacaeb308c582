package bookmarks

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	bookmarkService *Service
}

func (h *handler) list(c echo.Context) error {
	bookmarks, err := h.bookmarkService.List()
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Bookmarks []models.Bookmark `json:"bookmarks"`
	}{bookmarks}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) toggle(c echo.Context) error {
	// Bind params.
	params := TogglePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	bookmark, bookmarked, err := h.bookmarkService.Toggle(models.VerseRef{
		LanguageCode: params.LanguageCode,
		BookID:       params.BookID,
		Chapter:      params.Chapter,
		Verse:        params.Verse,
	}, params.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Bookmark   *models.Bookmark `json:"bookmark"`
		Bookmarked bool             `json:"bookmarked"`
	}{bookmark, bookmarked}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}
