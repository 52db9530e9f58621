package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiogoFabricioAG/connect2/internal/dto"
	"github.com/DiogoFabricioAG/connect2/internal/service"
	"github.com/labstack/echo/v4"
)

type StartHandler struct {
	svc service.StarterService
}

func NewStartHandler(svc service.StarterService) *StartHandler {
	return &StartHandler{svc: svc}
}

func (h *StartHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/events/start", h.StartEvent)
	g.POST("/events/:id/badges", h.AssignBadges)
}

func (h *StartHandler) StartEvent(c echo.Context) error {
	var req dto.StartEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	summary, err := h.svc.StartEvent(c.Request().Context(), service.StartParams{
		EventID:     req.EventID,
		EventCode:   req.EventCode,
		MinRoomSize: req.MinRoomSize,
		MaxRoomSize: req.MaxRoomSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingEventRef):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrStartInProgress):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *StartHandler) AssignBadges(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	assigned, err := h.svc.AssignBadges(c.Request().Context(), uint(eventID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.AssignBadgesResponse{Assigned: assigned})
}
