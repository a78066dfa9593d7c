package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/riftglance/insights-api/internal/cache"
	"github.com/riftglance/insights-api/internal/logic"
	"github.com/riftglance/insights-api/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// SceneService is the insight computation surface the handlers expose
// over HTTP.
type SceneService interface {
	List() []logic.SceneSummary
	Compute(ctx context.Context, sceneID string, sc logic.SceneContext) (models.ScenePayload, error)
	ComputeAll(ctx context.Context, sc logic.SceneContext) []models.ScenePayload
}

type Config struct {
	Scenes SceneService
	Store  cache.Store
	Logger *zap.Logger
}

type Handler struct {
	scenes    SceneService
	store     cache.Store
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		scenes:    cfg.Scenes,
		store:     cfg.Store,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}
