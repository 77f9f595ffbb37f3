// Package client implements the generic content browsing surface of
// the platform: a folder manager and a folder content view that any
// category page instantiates with a small configuration record. The
// dozen category pages differ only in this record, never in code.
package client

import "eduhub/models"

// Config parameterizes the generic manager/view pair for one category.
type Config struct {
	Title       string
	Description string
	APIEndpoint string // category namespace, e.g. "/api/grades"
	RoutePath   string // client route prefix, e.g. "/grades"
	Section     string
}

// ConfigForCategory derives the page configuration from a registry
// entry.
func ConfigForCategory(cat models.Category) Config {
	return Config{
		Title:       cat.Title,
		Description: cat.Description,
		APIEndpoint: "/api/" + cat.Slug,
		RoutePath:   cat.RoutePrefix,
		Section:     cat.Section,
	}
}
