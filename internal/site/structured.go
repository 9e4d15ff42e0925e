package site

import (
	"encoding/json"

	"github.com/sablekunal/all-we-need/internal/models"
)

// structuredData builds the JSON-LD graph embedded in each detail page:
// a SoftwareApplication entry plus the breadcrumb trail.
func structuredData(site Site, p models.Project, canonical string) ([]byte, error) {
	author := "Community"
	if len(p.Contributors) > 0 {
		author = p.Contributors[0].Login
	}

	graph := map[string]any{
		"@context": "https://schema.org",
		"@graph": []any{
			map[string]any{
				"@type":               "SoftwareApplication",
				"name":                p.Title,
				"description":         p.Description,
				"applicationCategory": "DeveloperApplication",
				"operatingSystem":     "Web",
				"url":                 p.Link,
				"offers": map[string]any{
					"@type":         "Offer",
					"price":         "0",
					"priceCurrency": "USD",
				},
				"author": map[string]any{
					"@type": "Person",
					"name":  author,
				},
			},
			map[string]any{
				"@type": "BreadcrumbList",
				"itemListElement": []any{
					map[string]any{
						"@type":    "ListItem",
						"position": 1,
						"name":     "Home",
						"item":     site.BaseURL + "/",
					},
					map[string]any{
						"@type":    "ListItem",
						"position": 2,
						"name":     "Projects",
						"item":     site.BaseURL + "/projects/",
					},
					map[string]any{
						"@type":    "ListItem",
						"position": 3,
						"name":     p.Title,
						"item":     canonical,
					},
				},
			},
		},
	}

	return json.Marshal(graph)
}
