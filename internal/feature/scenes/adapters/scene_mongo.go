// Package adapters provides the repository implementations for the scenes feature.
package adapters

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scene_backend/internal/feature/scenes/domain/entity"
	"scene_backend/internal/feature/scenes/usecase"
	"scene_backend/internal/infrastructure/mongodb"
)

// scenesCollection is the collection scenes are stored in.
const scenesCollection = "scenes"

// sceneMongo is the MongoDB implementation of the SceneRepository interface.
type sceneMongo struct {
	db *mongodb.Adapter
}

// Compile-time check that sceneMongo implements SceneRepository.
var _ usecase.SceneRepository = (*sceneMongo)(nil)

// NewSceneMongo creates a new sceneMongo backed by the given adapter.
func NewSceneMongo(db *mongodb.Adapter) *sceneMongo {
	return &sceneMongo{db: db}
}

// List counts the scenes matching the composed predicate, then fetches the
// requested page. The total reflects the full filtered count independent of
// page and per_page.
func (r *sceneMongo) List(ctx context.Context, f usecase.ListScenesFilter) ([]entity.Scene, int64, error) {
	opCtx, cancel := r.db.WithOperationTimeout(ctx)
	defer cancel()

	filter := buildSceneListQuery(f)
	col := r.db.Collection(scenesCollection)

	total, err := col.CountDocuments(opCtx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (f.Page - 1) * f.PerPage
	cur, err := col.Find(opCtx, filter, mongodb.FindPage(f.Sort, f.Reverse, skip, f.PerPage))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(opCtx)

	scenes := make([]entity.Scene, 0)
	if err := cur.All(opCtx, &scenes); err != nil {
		return nil, 0, err
	}
	return scenes, total, nil
}

// buildSceneListQuery composes the list predicate. Soft-deleted scenes are
// always excluded; every other clause is added only when its parameter is
// provided, and all active clauses are ANDed.
func buildSceneListQuery(f usecase.ListScenesFilter) bson.M {
	qb := mongodb.NewQueryBuilder().ExcludeDeleted()

	// A valid id short-circuits text search: the two never combine.
	if mongodb.IsValidID(f.Text) {
		oid, _ := primitive.ObjectIDFromHex(f.Text)
		qb.IDEq(oid)
	} else if f.Text != "" {
		qb.Contains("name", f.Text)
	}

	if f.Classification != "" {
		qb.Eq("classification", f.Classification)
	}
	if f.AgentType != "" {
		qb.Eq("agent_type", f.AgentType)
	}
	if len(f.Tags) > 0 {
		qb.ContainsAll("tags", f.Tags)
	}
	if len(f.ApplicationIDs) > 0 {
		if f.IncludeInApplication {
			qb.AnyIn("applications", f.ApplicationIDs)
		} else {
			qb.NoneIn("applications", f.ApplicationIDs)
		}
	}
	return qb.Build()
}
