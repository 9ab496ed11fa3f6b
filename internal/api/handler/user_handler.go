package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/visitor-registry/internal/api/metrics"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

// UserHandler serves account management and the active-visitor query.
// Every route is mounted behind the Auth middleware.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /api/get-user.
//
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/get-user [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /api/create-user.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/create-user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /api/update-user/:id. Only supplied fields change; an
// invalid payload changes nothing. An unknown id is reported before payload
// errors.
//
// @Summary      Partially update a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/update-user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.users.Get(c.Request().Context(), id); err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.UsersUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ActiveVisitors handles GET /api/active-visitors.
//
// @Summary      List active visitor accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/active-visitors [get]
func (h *UserHandler) ActiveVisitors(c echo.Context) error {
	users, err := h.users.ListActiveVisitors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}
