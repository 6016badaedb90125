package dto

import (
	"scene_backend/internal/feature/scenes/domain/entity"
)

// timeLayout is the fixed human-readable timestamp format used in responses.
const timeLayout = "2006-01-02 15:04:05"

// SceneResponse represents a scene in the API response.
type SceneResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	SceneName    string   `json:"scene_name"`
	MapName      string   `json:"map_name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Applications []string `json:"applications"`
	AgentType    string   `json:"agent_type"`
	CreateTime   string   `json:"create_time"`
	UpdateTime   string   `json:"update_time"`
}

// SceneListResponse is the pagination envelope for scene listings.
// Total reflects the full filtered count, independent of the page requested.
type SceneListResponse struct {
	Total   int64           `json:"total"`
	Items   []SceneResponse `json:"items"`
	Page    int64           `json:"page"`
	PerPage int64           `json:"per_page"`
}

// SceneResponseFromEntity maps a scene entity to its external response shape.
func SceneResponseFromEntity(s *entity.Scene) SceneResponse {
	return SceneResponse{
		ID:           s.ID.Hex(),
		Name:         s.Name,
		SceneName:    s.SceneName,
		MapName:      s.MapName,
		Description:  s.Description,
		Image:        s.Image,
		Applications: s.Applications,
		AgentType:    s.AgentType,
		CreateTime:   s.CreateTime.Format(timeLayout),
		UpdateTime:   s.UpdateTime.Format(timeLayout),
	}
}
