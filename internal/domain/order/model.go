package order

import (
	"time"

	"github.com/samber/lo"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// Order is a sale order. It is created with the placeholder name and receives
// its durable identifier from the naming rule before any downstream listener
// observes it.
type Order struct {
	ID         string           `db:"id" json:"id"`
	Name       string           `db:"name" json:"name"`
	State      types.OrderState `db:"state" json:"state"`
	CustomerID string           `db:"customer_id" json:"customer_id"`
	CompanyID  string           `db:"company_id" json:"company_id"`
	// ProjectID is the pre-specified project context this order was created
	// for, if any. Set through the create-for-project flow.
	ProjectID      string     `db:"project_id" json:"project_id"`
	ClientOrderRef string     `db:"client_order_ref" json:"client_order_ref"`
	DateOrder      *time.Time `db:"date_order" json:"date_order"`

	Lines []*Line `db:"-" json:"lines"`
	types.BaseModel
}

// SequenceOnlyName is the portion of the order identifier before the first
// separator, used by reporting.
func (o *Order) SequenceOnlyName() string {
	if o.Name == "" {
		return ""
	}
	name, _, _ := cutName(o.Name)
	return name
}

func cutName(name string) (string, string, bool) {
	for i := 0; i < len(name); i++ {
		if name[i] == '-' {
			return name[:i], name[i+1:], true
		}
	}
	return name, "", false
}

// SortedLines returns the order lines in ascending sequence order. All
// default-line selections run over this ordering.
func (o *Order) SortedLines() []*Line {
	lines := make([]*Line, len(o.Lines))
	copy(lines, o.Lines)
	for i := 1; i < len(lines); i++ {
		for j := i; j > 0 && lines[j-1].Sequence > lines[j].Sequence; j-- {
			lines[j-1], lines[j] = lines[j], lines[j-1]
		}
	}
	return lines
}

// ServiceLines returns the lines whose stored classification is service-like.
func (o *Order) ServiceLines() []*Line {
	return lo.Filter(o.SortedLines(), func(l *Line, _ int) bool {
		return l.IsService
	})
}

// DefaultServiceLine returns the first service-like line by ascending
// sequence, or nil when the order has none.
func (o *Order) DefaultServiceLine() *Line {
	for _, line := range o.SortedLines() {
		if line.IsService {
			return line
		}
	}
	return nil
}
