package readingplans

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	planService *Service
}

func (h *handler) start(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := StartPlanPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	plan, err := h.planService.StartPlan(ctx, params.PlanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, plan))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	plan, err := h.planService.RetrievePlan(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, plan))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	plans, err := h.planService.ListPlans(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		ReadingPlans []*models.ReadingPlan `json:"reading_plans"`
	}{plans}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) completeDay(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := CompleteDayPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	plan, err := h.planService.CompleteDay(ctx, c.Param("id"), params.Day)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, plan))
}

func (h *handler) updateNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := UpdateNotificationsPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	plan, err := h.planService.UpdateNotifications(ctx, c.Param("id"), params.Enabled, params.Time)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, plan))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.planService.DeletePlan(ctx, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}
