package orders

import (
	"github.com/google/uuid"
	"github.com/lateladelgol/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

const pipelineName = "orders"

// SubmissionItem is one purchased line as sent by the checkout page.
type SubmissionItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Submission is the checkout payload. The client also sends a total,
// but it is advisory only: the pipeline recomputes it from the items
// before anything durable is written.
type Submission struct {
	Name  string           `json:"name"`
	Email string           `json:"email"`
	Items []SubmissionItem `json:"items"`
	Total float64          `json:"total"`
}

// Result reports a completed submission.
type Result struct {
	RecordID uuid.UUID
	Provider enums.MailProvider
}

// recomputeTotal derives the order total from the items with decimal
// arithmetic. Quantities below one count as one, matching the render.
func recomputeTotal(items []SubmissionItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		price := decimal.NewFromFloat(item.UnitPrice)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}
	value, _ := total.Float64()
	return value
}
