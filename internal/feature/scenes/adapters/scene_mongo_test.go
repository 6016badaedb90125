package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scene_backend/internal/feature/scenes/usecase"
)

func TestBuildSceneListQuery(t *testing.T) {
	t.Run("empty filter degrades to list all non-deleted", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{Page: 1, PerPage: 6})
		assert.Equal(t, bson.M{"$and": []bson.M{{"is_deleted": false}}}, got)
	})

	t.Run("valid id in text short-circuits text search", func(t *testing.T) {
		id := primitive.NewObjectID()
		got := buildSceneListQuery(usecase.ListScenesFilter{Text: id.Hex()})

		and := got["$and"].([]bson.M)
		assert.Len(t, and, 2)
		assert.Equal(t, bson.M{"_id": id}, and[1])
	})

	t.Run("plain text becomes a substring match on name only", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{Text: "Forest"})

		and := got["$and"].([]bson.M)
		assert.Len(t, and, 2)
		assert.Equal(t, bson.M{"name": primitive.Regex{Pattern: "Forest", Options: "i"}}, and[1])
	})

	t.Run("classification and agent type are exact matches", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{
			Classification: "outdoor",
			AgentType:      "vehicle",
		})

		and := got["$and"].([]bson.M)
		assert.Contains(t, and, bson.M{"classification": "outdoor"})
		assert.Contains(t, and, bson.M{"agent_type": "vehicle"})
	})

	t.Run("tags require a superset match", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{Tags: []string{"a", "b"}})

		and := got["$and"].([]bson.M)
		assert.Contains(t, and, bson.M{"tags": bson.M{"$all": []string{"a", "b"}}})
	})

	t.Run("application ids with include true use $in", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{
			ApplicationIDs:       []string{"app1"},
			IncludeInApplication: true,
		})

		and := got["$and"].([]bson.M)
		assert.Contains(t, and, bson.M{"applications": bson.M{"$in": []string{"app1"}}})
	})

	t.Run("application ids with include false use $nin", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{
			ApplicationIDs:       []string{"app1"},
			IncludeInApplication: false,
		})

		and := got["$and"].([]bson.M)
		assert.Contains(t, and, bson.M{"applications": bson.M{"$nin": []string{"app1"}}})
	})

	t.Run("include flag without application ids is ignored", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{IncludeInApplication: true})

		and := got["$and"].([]bson.M)
		assert.Len(t, and, 1)
	})

	t.Run("all provided filters are combined with and", func(t *testing.T) {
		got := buildSceneListQuery(usecase.ListScenesFilter{
			Text:                 "Forest",
			Classification:       "outdoor",
			AgentType:            "vehicle",
			Tags:                 []string{"a"},
			ApplicationIDs:       []string{"app1"},
			IncludeInApplication: true,
		})

		and := got["$and"].([]bson.M)
		assert.Len(t, and, 6)
	})
}
