package handler

import (
	"time"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
)

// ErrorResponse is the standard error envelope returned on all 4xx/5xx responses.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Access  string        `json:"access"`
	Refresh string        `json:"refresh"`
	User    *userResponse `json:"user"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// --- Users ---

type createUserRequest struct {
	Username  string `json:"username"   validate:"required,max=150,username"`
	Password  string `json:"password"   validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name"  validate:"max=150"`
	Email     string `json:"email"      validate:"omitempty,email,max=254"`
	Role      string `json:"role"       validate:"required"`
	IsActive  *bool  `json:"is_active"`
}

// updateUserRequest mirrors createUserRequest with every field optional.
type updateUserRequest struct {
	Username  *string `json:"username"   validate:"omitnil,min=1,max=150,username"`
	Password  *string `json:"password"   validate:"omitnil,min=8,max=128"`
	FirstName *string `json:"first_name" validate:"omitnil,max=150"`
	LastName  *string `json:"last_name"  validate:"omitnil,max=150"`
	Email     *string `json:"email"      validate:"omitnil,omitempty,email,max=254"`
	Role      *string `json:"role"       validate:"omitnil,min=1"`
	IsActive  *bool   `json:"is_active"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Visitors ---

type createVisitorRequest struct {
	FirstName       string `json:"first_name"       validate:"required,max=150"`
	LastName        string `json:"last_name"        validate:"required,max=150"`
	MiddleInitial   string `json:"middle_initial"   validate:"max=2"`
	Purpose         string `json:"purpose"          validate:"required,max=150"`
	PurposeOther    string `json:"purpose_other"    validate:"required_if=Purpose Other,max=255"`
	Department      string `json:"department"       validate:"required,max=150"`
	DepartmentOther string `json:"department_other" validate:"required_if=Department Other,max=255"`
	ContactNumber   string `json:"contact_number"   validate:"max=32"`
	Email           string `json:"email"            validate:"omitempty,email,max=254"`
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	Time            string `json:"time"             validate:"required,datetime=15:04"`
}

type visitorResponse struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	MiddleInitial   string    `json:"middle_initial"`
	Purpose         string    `json:"purpose"`
	PurposeOther    string    `json:"purpose_other"`
	Department      string    `json:"department"`
	DepartmentOther string    `json:"department_other"`
	ContactNumber   string    `json:"contact_number"`
	Email           string    `json:"email"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	CreatedAt       time.Time `json:"created_at"`
}

// --- Mappers ---

func toUserResponse(u *domain.User) *userResponse {
	return &userResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toUserListResponse(users []*domain.User) []*userResponse {
	out := make([]*userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

func toVisitorResponse(v *domain.Visitor) *visitorResponse {
	return &visitorResponse{
		ID:              v.ID,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		MiddleInitial:   v.MiddleInitial,
		Purpose:         v.Purpose,
		PurposeOther:    v.PurposeOther,
		Department:      v.Department,
		DepartmentOther: v.DepartmentOther,
		ContactNumber:   v.ContactNumber,
		Email:           v.Email,
		Date:            v.Date,
		Time:            v.Time,
		CreatedAt:       v.CreatedAt.UTC(),
	}
}

func toVisitorListResponse(visitors []*domain.Visitor) []*visitorResponse {
	out := make([]*visitorResponse, len(visitors))
	for i, v := range visitors {
		out[i] = toVisitorResponse(v)
	}
	return out
}
