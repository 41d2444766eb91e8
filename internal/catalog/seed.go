package catalog

import (
	"time"

	"celora/internal/domain"
)

// Seed returns the built-in reference collection used when the service runs
// without a database. A fresh slice is returned on every call so callers can
// never mutate the shared data.
func Seed() []domain.TemplateSummary {
	return []domain.TemplateSummary{
		{
			ID:            "tpl-ecommerce-dashboard",
			Title:         "Modern E-commerce Dashboard",
			Description:   "A comprehensive dashboard template for e-commerce platforms with analytics, inventory management, and user interfaces.",
			Price:         2999,
			OriginalPrice: 3999,
			Category:      domain.CategoryWeb,
			Rating:        4.8,
			Downloads:     1250,
			Tags:          []string{"dashboard", "ecommerce", "analytics", "admin"},
			IsPremium:     true,
			IsTrending:    true,
			CreatedAt:     time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
			OwnerID:       "user1",
		},
		{
			ID:          "tpl-flutter-food-delivery",
			Title:       "Flutter Food Delivery App",
			Description: "Complete food delivery app built with Flutter. Includes user app, delivery partner app, and restaurant dashboard.",
			Price:       4999,
			Category:    domain.CategoryFlutter,
			Rating:      4.9,
			Downloads:   850,
			Tags:        []string{"food", "delivery", "mobile", "flutter"},
			IsPremium:   true,
			IsTrending:  true,
			IsNew:       true,
			CreatedAt:   time.Date(2024, 12, 22, 14, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 22, 14, 30, 0, 0, time.UTC),
			OwnerID:     "user2",
		},
		{
			ID:          "tpl-creative-portfolio",
			Title:       "Creative Portfolio Website",
			Description: "Stunning portfolio template for designers, photographers, and creative professionals. Fully responsive and customizable.",
			Price:       0,
			Category:    domain.CategoryWeb,
			Rating:      4.6,
			Downloads:   2100,
			Tags:        []string{"portfolio", "creative", "photography", "design"},
			IsFree:      true,
			CreatedAt:   time.Date(2024, 12, 18, 9, 15, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 18, 9, 15, 0, 0, time.UTC),
			OwnerID:     "user3",
		},
		{
			ID:          "tpl-android-chat",
			Title:       "Android Chat Application",
			Description: "Feature-rich chat application for Android with real-time messaging, media sharing, and group conversations.",
			Price:       3499,
			Category:    domain.CategoryAndroid,
			Rating:      4.7,
			Downloads:   680,
			Tags:        []string{"chat", "messaging", "android", "realtime"},
			IsPremium:   true,
			IsNew:       true,
			CreatedAt:   time.Date(2024, 12, 21, 16, 45, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 21, 16, 45, 0, 0, time.UTC),
			OwnerID:     "user4",
		},
		{
			ID:            "tpl-material-ui-kit",
			Title:         "Material Design UI Kit",
			Description:   "Comprehensive UI kit with 100+ components following Material Design guidelines. Perfect for any project.",
			Price:         1999,
			OriginalPrice: 2999,
			Category:      domain.CategoryUIKit,
			Rating:        4.9,
			Downloads:     1580,
			Tags:          []string{"ui kit", "material design", "components", "design system"},
			IsPremium:     true,
			IsTrending:    true,
			CreatedAt:     time.Date(2024, 12, 19, 11, 20, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 12, 19, 11, 20, 0, 0, time.UTC),
			OwnerID:       "user5",
		},
		{
			ID:          "tpl-startup-landing",
			Title:       "Startup Landing Page",
			Description: "High-converting landing page template for startups and SaaS companies. Includes pricing, testimonials, and CTAs.",
			Price:       1599,
			Category:    domain.CategoryWeb,
			Rating:      4.5,
			Downloads:   920,
			Tags:        []string{"landing page", "startup", "saas", "conversion"},
			IsPremium:   true,
			CreatedAt:   time.Date(2024, 12, 17, 13, 10, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 17, 13, 10, 0, 0, time.UTC),
			OwnerID:     "user6",
		},
	}
}
