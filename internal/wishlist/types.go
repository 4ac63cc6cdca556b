package wishlist

const snapshotKind = "wishlist"

// Entry is the product snapshot a client saved to their wishlist. The
// full snapshot is kept so the list renders without a catalog lookup.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	ImageRef    string   `json:"image_ref,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	Description string   `json:"description,omitempty"`
}
