package domain

import "time"

// PurposeOther and DepartmentOther switch on the matching free-text field.
const (
	PurposeOther    = "Other"
	DepartmentOther = "Other"
)

// Visitor is a front-desk check-in record. It is not an account.
// CreatedAt is assigned by the store on insert.
type Visitor struct {
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
