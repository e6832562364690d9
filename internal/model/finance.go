package model

// Finance item status constants.
const (
	FinancePaid    = "paid"
	FinancePending = "pending"
	FinanceOverdue = "overdue"
)

// FinanceItem is a single cost line (material, labor, invoice).
// Total is authoritative; it is not guaranteed to equal the quantity
// times the unit price, since Quantity is a display string that may
// embed a unit ("1.5 tấn", "12 m3").
type FinanceItem struct {
	ID        string  `json:"id" db:"id"`
	Date      string  `json:"date" db:"date"`
	Name      string  `json:"name" db:"name"`
	Vendor    string  `json:"vendor" db:"vendor"`
	Quantity  string  `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unitPrice" db:"unit_price"`
	Total     float64 `json:"total" db:"total"`
	Status    string  `json:"status" db:"status"`
	Position  int     `json:"-" db:"position"`
}
