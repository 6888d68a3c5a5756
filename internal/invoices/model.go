package invoices

import (
	"time"

	"github.com/biztime/biztime/internal/companies"
)

// Invoice is the full invoices row as stored. ID and AddDate are assigned
// by the store; Paid and PaidDate are placeholders for a payment workflow
// no operation here transitions.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// Summary is the list projection, ordered by ascending id.
type Summary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// Detail is the enriched read shape: once the join resolves, the owning
// company replaces the raw comp_code foreign key. Company stays absent if
// the referenced row is missing.
type Detail struct {
	ID       int64              `json:"id"`
	Amt      float64            `json:"amt"`
	Paid     bool               `json:"paid"`
	AddDate  time.Time          `json:"add_date"`
	PaidDate *time.Time         `json:"paid_date"`
	Company  *companies.Company `json:"company,omitempty"`
}
