// Package entity defines the domain entities for the scenes feature.
package entity

import (
	domain "scene_backend/internal/domain/entity"
)

// Scene represents a simulation scene in the catalog.
type Scene struct {
	domain.Base `bson:",inline"`

	// Name is the human-facing scene name.
	Name string `bson:"name" json:"name"`

	// SceneName is the engine-facing name, distinct from Name.
	SceneName string `bson:"scene_name" json:"scene_name"`

	// MapName identifies the map the scene runs on.
	MapName string `bson:"map_name" json:"map_name"`

	// Description is a free-form description of the scene.
	Description string `bson:"description" json:"description"`

	// Image is a URI or path to the scene's preview image.
	Image string `bson:"image" json:"image"`

	// Tags is an ordered set of labels attached to the scene.
	Tags []string `bson:"tags" json:"tags"`

	// AgentType identifies the class of automated actor the scene targets.
	AgentType string `bson:"agent_type" json:"agent_type"`

	// Classification is the category label used for filtering.
	Classification string `bson:"classification" json:"classification"`

	// Applications lists the external application ids this scene belongs to.
	Applications []string `bson:"applications" json:"applications"`
}
