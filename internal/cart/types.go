package cart

import "github.com/shopspring/decimal"

// snapshotKind is the namespace segment used for cart snapshot keys.
const snapshotKind = "cart"

// Line is one distinct purchasable entry in a cart. ID is the product
// id; two adds with the same id merge into one line.
type Line struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	ImageRef  string  `json:"image_ref,omitempty"`
}

// View is the full cart as returned to callers: the ordered lines plus
// the total recomputed from them.
type View struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

// TotalOf sums unitPrice*quantity across lines with decimal arithmetic
// so repeated float addition cannot drift.
func TotalOf(lines []Line) float64 {
	total := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.UnitPrice)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	value, _ := total.Float64()
	return value
}
