package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DiogoFabricioAG/connect2/internal/dto"
	"github.com/DiogoFabricioAG/connect2/internal/models"
	"github.com/DiogoFabricioAG/connect2/internal/service"
	"github.com/labstack/echo/v4"
)

type GuestHandler struct {
	svc service.GuestService
}

func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

func (h *GuestHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/events/:id/guests", h.RegisterGuest)
	g.GET("/events/:id/guests", h.ListGuests)
	g.PATCH("/guests/:id", h.UpdateGuest)
	g.POST("/guests/search", h.SearchGuest)
}

func (h *GuestHandler) RegisterGuest(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.RegisterGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FullName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "full_name is required")
	}

	guest := &models.Guest{
		EventID:  uint(eventID),
		FullName: req.FullName,
		Email:    req.Email,
		Company:  req.Company,
		Role:     req.Role,
	}

	if err := h.svc.RegisterGuest(c.Request().Context(), guest); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) ListGuests(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	guests, err := h.svc.ListGuests(c.Request().Context(), uint(eventID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.GuestResponse, len(guests))
	for i, g := range guests {
		resp[i] = dto.ToGuestResponse(&g)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *GuestHandler) UpdateGuest(c echo.Context) error {
	guestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid guest id")
	}

	var req dto.UpdateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}

	guest, err := h.svc.UpdateProfile(c.Request().Context(), uint(guestID), fields)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) SearchGuest(c echo.Context) error {
	var req dto.SearchGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BadgeNumber <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "badge_number is required")
	}

	guest, err := h.svc.SearchByBadge(c.Request().Context(), service.SearchParams{
		EventID:     req.EventID,
		EventCode:   req.EventCode,
		BadgeNumber: req.BadgeNumber,
		MarkFound:   req.MarkFound,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingEventRef):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	if guest == nil {
		return c.JSON(http.StatusOK, dto.SearchGuestResponse{Found: false})
	}

	resp := dto.ToGuestResponse(guest)
	return c.JSON(http.StatusOK, dto.SearchGuestResponse{Found: true, Guest: &resp})
}
