package catalog

// Category groups services on the storefront.
type Category string

const (
	CategoryHair  Category = "hair"
	CategoryBeard Category = "beard"
	CategorySpa   Category = "spa"
	CategoryNails Category = "nails"
)

// Service is a bookable salon service. Catalog entries are immutable;
// identity is the ID.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int      `json:"price_cents"`
	DurationMin int      `json:"duration_min"`
	ImageURL    string   `json:"image_url"`
	Category    Category `json:"category"`
}

// Stylist is a member of the salon staff that can be booked.
type Stylist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	ImageURL    string   `json:"image_url"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
}
