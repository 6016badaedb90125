// Package router assembles the HTTP routes for the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"scene_backend/internal/config"
	sceneshandler "scene_backend/internal/feature/scenes/transport/handler"
	usersdto "scene_backend/internal/feature/users/transport/http/dto"
	usershandler "scene_backend/internal/feature/users/transport/handler"
	platformhandler "scene_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with CORS, custom validation rules, and
// all resource routes mounted under the configured API prefix.
func NewRouter(cfg *config.Config, users *usershandler.UserHandler,
	scenes *sceneshandler.SceneHandler, health *platformhandler.HealthHandler) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := usersdto.RegisterValidations(v); err != nil {
			return nil, err
		}
	}

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg)))

	// Liveness/readiness probe, outside the API prefix.
	r.GET("/healthz", health.Health)

	api := r.Group(cfg.APIPrefix)
	{
		u := api.Group("/users")
		{
			u.POST("", users.Create)
			u.GET("", users.List)
			u.GET("/:id", users.Get)
			u.PUT("/:id", users.Update)
			u.DELETE("/:id", users.Delete)
		}

		s := api.Group("/scenes")
		{
			s.GET("", scenes.List)
		}
	}

	return r, nil
}

// corsConfig translates the configured allow-lists into a gin-contrib/cors
// config. A bare "*" origin switches to allow-all mode, which cannot be
// combined with credentials.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		AllowCredentials: cfg.AllowCredentials,
	}
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	return c
}
