package models

type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Menu is the full catalog; field order fixes the category order on the wire
type Menu struct {
	DailySpecials []MenuItem `json:"daily_specials"`
	Beverages     []MenuItem `json:"beverages"`
	Sweets        []MenuItem `json:"sweets"`
}
