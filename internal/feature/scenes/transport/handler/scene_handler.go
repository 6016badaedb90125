// Package handler provides the HTTP handlers for the scenes feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"scene_backend/internal/api"
	"scene_backend/internal/feature/scenes/domain/entity"
	"scene_backend/internal/feature/scenes/transport/http/dto"
	"scene_backend/internal/feature/scenes/usecase"
)

// SceneUsecase defines the scene operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SceneUsecase interface {
	List(ctx context.Context, filter usecase.ListScenesFilter) ([]entity.Scene, int64, error)
}

// SceneHandler handles HTTP requests for scene resources.
type SceneHandler struct {
	scenes SceneUsecase
}

// NewSceneHandler creates a new SceneHandler with the given usecase.
func NewSceneHandler(scenes SceneUsecase) *SceneHandler {
	return &SceneHandler{scenes: scenes}
}

// List handles GET /scenes.
// It returns the pagination envelope {total, items, page, per_page}.
func (h *SceneHandler) List(c *gin.Context) {
	var req dto.ListScenesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("list scenes validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}
	scenes, total, err := h.scenes.List(c.Request.Context(), usecase.ListScenesFilter{
		Text:                 req.Text,
		Classification:       req.SceneClassification,
		AgentType:            req.AgentType,
		Sort:                 req.Sort,
		Reverse:              req.Reverse,
		Page:                 req.Page,
		PerPage:              req.PerPage,
		Tags:                 req.Tags,
		ApplicationIDs:       req.ApplicationID,
		IncludeInApplication: req.IncludeInApplication,
	})
	if err != nil {
		slog.Error("list scenes failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	items := make([]dto.SceneResponse, 0, len(scenes))
	for i := range scenes {
		items = append(items, dto.SceneResponseFromEntity(&scenes[i]))
	}
	c.JSON(http.StatusOK, dto.SceneListResponse{
		Total:   total,
		Items:   items,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
}
