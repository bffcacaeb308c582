package storagerep

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	storageService *Service
}

func (h *handler) estimate(c echo.Context) error {
	estimate, ok, err := h.storageService.EstimateUsage()
	if err != nil {
		return errors.WithStack(err)
	}
	if !ok {
		// The host can't report a quota; the client falls back to "unknown".
		return errors.WithStack(c.NoContent(http.StatusNoContent))
	}

	return errors.WithStack(c.JSON(http.StatusOK, estimate))
}

func (h *handler) clear(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.storageService.Clear(ctx); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}
