package customer

import (
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Customer is the ordering party; its display name feeds order and project
// naming
type Customer struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	types.BaseModel
}
