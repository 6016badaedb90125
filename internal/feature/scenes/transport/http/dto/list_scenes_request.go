// Package dto defines data transfer objects for the scenes HTTP API.
package dto

// ListScenesReq represents the query parameters for listing scenes.
// tags and application_id accept repeated parameters. Page and per_page
// below 1 are passed through unvalidated; the pagination arithmetic
// inherits whatever they produce.
type ListScenesReq struct {
	Text                 string   `form:"text"`
	SceneClassification  string   `form:"scene_classification"`
	AgentType            string   `form:"agent_type"`
	Sort                 string   `form:"sort"`
	Reverse              bool     `form:"reverse,default=false"`
	Page                 int64    `form:"page,default=1"`
	PerPage              int64    `form:"per_page,default=6"`
	Tags                 []string `form:"tags"`
	ApplicationID        []string `form:"application_id"`
	IncludeInApplication bool     `form:"include_in_application,default=false"`
}
