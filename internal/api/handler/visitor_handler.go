package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/visitor-registry/internal/api/metrics"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

// VisitorHandler serves the anonymous check-in endpoints.
type VisitorHandler struct {
	service ports.VisitorService
}

func NewVisitorHandler(service ports.VisitorService) *VisitorHandler {
	return &VisitorHandler{service: service}
}

// Create handles POST /api/visitor.
//
// @Summary      Record a visitor check-in
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Param        body  body      createVisitorRequest  true  "Visitor details"
// @Success      201   {object}  visitorResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/visitor [post]
func (h *VisitorHandler) Create(c echo.Context) error {
	var req createVisitorRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	v, err := h.service.Create(c.Request().Context(), ports.CreateVisitorInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MiddleInitial:   req.MiddleInitial,
		Purpose:         req.Purpose,
		PurposeOther:    req.PurposeOther,
		Department:      req.Department,
		DepartmentOther: req.DepartmentOther,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Date:            req.Date,
		Time:            req.Time,
	})
	if err != nil {
		return err
	}

	metrics.VisitorsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toVisitorResponse(v))
}

// List handles GET /api/visitor-list. Every record is returned, newest first.
//
// @Summary      List visitors
// @Tags         visitors
// @Produce      json
// @Success      200  {array}  visitorResponse
// @Router       /api/visitor-list [get]
func (h *VisitorHandler) List(c echo.Context) error {
	visitors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.VisitorListSize.Observe(float64(len(visitors)))
	return c.JSON(http.StatusOK, toVisitorListResponse(visitors))
}
