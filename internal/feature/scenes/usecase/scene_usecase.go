// Package usecase implements the business logic for the scenes feature.
package usecase

import (
	"context"

	"scene_backend/internal/feature/scenes/domain/entity"
)

// ListScenesFilter carries the optional filters, sort, and page-based
// pagination parameters for listing scenes.
//
// Text is special-cased: when it is a syntactically valid document id, the
// query becomes an exact id lookup instead of a text search. The two are
// mutually exclusive for the same input.
type ListScenesFilter struct {
	Text           string
	Classification string
	AgentType      string
	Sort           string
	Reverse        bool
	Page           int64
	PerPage        int64
	Tags           []string

	// ApplicationIDs with IncludeInApplication true keeps scenes whose
	// applications intersect the ids; false keeps scenes with no
	// intersection. An empty slice skips the filter regardless of the flag.
	ApplicationIDs       []string
	IncludeInApplication bool
}

// SceneRepository abstracts the persistence layer for scene entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SceneRepository interface {
	// List returns one page of scenes matching the filter plus the total
	// count of matches before pagination.
	List(ctx context.Context, filter ListScenesFilter) ([]entity.Scene, int64, error)
}

// SceneUsecase provides business logic for scene operations.
type SceneUsecase struct {
	scenes SceneRepository
}

// NewSceneUsecase creates a new SceneUsecase with the given repository.
func NewSceneUsecase(scenes SceneRepository) *SceneUsecase {
	return &SceneUsecase{scenes: scenes}
}

// List returns the page of non-deleted scenes matching the filter and the
// total match count. Page and PerPage are taken as-is; values below 1 are
// not clamped here.
func (u *SceneUsecase) List(ctx context.Context, filter ListScenesFilter) ([]entity.Scene, int64, error) {
	return u.scenes.List(ctx, filter)
}
