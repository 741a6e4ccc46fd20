// file: internal/ranking/fixtures_test.go
// version: 1.0.0
// guid: ebfb1c78-3e76-4211-9e1b-81cb42b369cc

package ranking

import "github.com/jdfalk/rankcheck/internal/models"

func boutiqueResults() []models.SearchResult {
	return []models.SearchResult{
		{
			Position: 1,
			Title:    "Best Boutique in Ahmedabad - Premium Fashion Store",
			Snippet:  "Discover designer wear and bridal collections at our Ahmedabad store.",
			URL:      "https://www.example-boutique.com/ahmedabad",
		},
		{
			Position: 2,
			Title:    "Top 10 Boutiques in Ahmedabad for Ethnic Wear",
			Snippet:  "Our fashion blog ranks the top boutiques across the city.",
			URL:      "https://fashionhub.in/top-boutiques",
		},
		{
			Position: 3,
			Title:    "Designer Boutique Collections | Navrangpura",
			Snippet:  "Hand-picked designer collections from local artisans.",
			URL:      "https://navrangpura-designs.in/",
		},
		{
			Position: 4,
			Title:    "Boutique Shopping Guide - Gujarat Fashion Blog",
			Snippet:  "Where to shop for boutique labels across Gujarat.",
			URL:      "https://gujaratstyle.in/guide",
		},
		{
			Position: 5,
			Title:    "Saree Emporium and Ethnic Wear Showroom",
			Snippet:  "Handloom sarees and silk fabrics since 1985.",
			URL:      "https://sareeemporium.in/",
		},
	}
}

func weavingResults() []models.SearchResult {
	return []models.SearchResult{
		{Position: 1, Title: "Silk Saree Weaving Workshop"},
		{Position: 2, Title: "Saree Weaving Classes"},
		{Position: 3, Title: "Handmade Pottery Studio"},
	}
}
