package classifier

import (
	"strings"

	"aura-bank-core/internal/core/domain"
)

// categoryMeta mirrors the sidecar's icon/color table so fallback responses
// render the same in clients.
var categoryMeta = map[string]struct{ icon, color string }{
	"Food & Dining":     {"restaurant", "#ef4444"},
	"Transportation":    {"directions_car", "#f97316"},
	"Shopping":          {"shopping_bag", "#8b5cf6"},
	"Bills & Utilities": {"receipt_long", "#06b6d4"},
	"Entertainment":     {"movie", "#ec4899"},
	"Healthcare":        {"local_hospital", "#10b981"},
	"Education":         {"school", "#3b82f6"},
	"Travel":            {"flight", "#14b8a6"},
	"Personal Care":     {"spa", "#f472b6"},
	"Others":            {"category", "#6b7280"},
}

var keywordCategories = []struct {
	category string
	keywords []string
}{
	{"Food & Dining", []string{
		"swiggy", "zomato", "restaurant", "cafe", "food", "pizza",
		"burger", "coffee", "dinner", "lunch", "breakfast",
		"mcdonald", "starbucks", "domino", "kfc", "subway",
	}},
	{"Transportation", []string{
		"uber", "ola", "rapido", "metro", "petrol", "fuel",
		"gas station", "parking", "toll", "cab", "taxi",
		"bus", "train", "flight", "airline",
	}},
	{"Shopping", []string{
		"amazon", "flipkart", "myntra", "shopping", "store",
		"mart", "purchase", "order", "delivery", "grocery",
	}},
	{"Bills & Utilities", []string{
		"electricity", "water bill", "internet", "broadband",
		"mobile recharge", "rent", "maintenance", "utility",
		"gas bill", "phone bill", "dth",
	}},
	{"Entertainment", []string{
		"netflix", "spotify", "movie", "cinema", "game",
		"hotstar", "prime", "youtube", "concert", "show",
	}},
	{"Healthcare", []string{
		"hospital", "doctor", "pharmacy", "medicine", "medical",
		"clinic", "health", "dental", "lab test",
	}},
	{"Education", []string{
		"course", "tuition", "school", "college", "book",
		"udemy", "coursera", "education", "training",
	}},
	{"Travel", []string{
		"hotel", "booking", "airbnb", "makemytrip",
		"goibibo", "travel", "vacation", "trip",
	}},
}

// FallbackCategory classifies a description by keyword matching. Matches
// score 85, the default bucket scores 50, on the sidecar's 0-100 scale.
func FallbackCategory(description string) *domain.Category {
	lower := strings.ToLower(description)

	for _, kc := range keywordCategories {
		for _, kw := range kc.keywords {
			if strings.Contains(lower, kw) {
				return metaFor(kc.category, 85.0)
			}
		}
	}
	return metaFor("Others", 50.0)
}

func metaFor(category string, confidence float64) *domain.Category {
	meta := categoryMeta[category]
	return &domain.Category{
		Name:       category,
		Confidence: confidence,
		Icon:       meta.icon,
		Color:      meta.color,
		ModelUsed:  "keyword_fallback",
	}
}
