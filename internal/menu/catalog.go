// Package menu holds the fixed Shree Guru Mess menu.
package menu

import "guru-mess-api/pkg/models"

var (
	dailySpecials = []models.MenuItem{
		{Name: "Traditional Rice Meals", Description: "Unlimited rice with sambar, rasam, kootu, poriyal, curd, pickle, papad, and jaggery payasam"},
		{Name: "Ragi Mudde", Description: "Nutritious finger millet balls served with spicy sambar and fresh coconut chutney"},
		{Name: "Chapathi Meals", Description: "Soft whole wheat chapathis with mixed vegetable curry and dal"},
	}
	beverages = []models.MenuItem{
		{Name: "Filter Coffee", Description: "Traditional South Indian filter coffee"},
		{Name: "Buttermilk", Description: "Fresh homemade spiced buttermilk"},
	}
	sweets = []models.MenuItem{
		{Name: "Jaggery Payasam", Description: "Traditional rice kheer made with pure jaggery"},
		{Name: "Jaggery Laddu", Description: "Handmade laddus with roasted gram and jaggery"},
	}
)

// Catalog returns a copy of the full menu. The result is identical on every call.
func Catalog() models.Menu {
	return models.Menu{
		DailySpecials: clone(dailySpecials),
		Beverages:     clone(beverages),
		Sweets:        clone(sweets),
	}
}

func clone(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out
}
