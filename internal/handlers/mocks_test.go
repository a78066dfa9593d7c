package handlers

import (
	"context"
	"time"

	"github.com/riftglance/insights-api/internal/logic"
	"github.com/riftglance/insights-api/internal/models"
)

// MockSceneService
type MockSceneService struct {
	ListFunc       func() []logic.SceneSummary
	ComputeFunc    func(ctx context.Context, sceneID string, sc logic.SceneContext) (models.ScenePayload, error)
	ComputeAllFunc func(ctx context.Context, sc logic.SceneContext) []models.ScenePayload
}

func (m *MockSceneService) List() []logic.SceneSummary {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []logic.SceneSummary{
		{ID: "year-in-motion", Label: "Year in Motion", Kind: models.VizHeatmap},
	}
}

func (m *MockSceneService) Compute(ctx context.Context, sceneID string, sc logic.SceneContext) (models.ScenePayload, error) {
	if m.ComputeFunc != nil {
		return m.ComputeFunc(ctx, sceneID, sc)
	}
	return models.ScenePayload{SceneID: sceneID, Kind: models.VizHeatmap}, nil
}

func (m *MockSceneService) ComputeAll(ctx context.Context, sc logic.SceneContext) []models.ScenePayload {
	if m.ComputeAllFunc != nil {
		return m.ComputeAllFunc(ctx, sc)
	}
	return []models.ScenePayload{}
}

// mockStore is a minimal cache.Store for readiness checks.
type mockStore struct {
	pingErr error
}

func (m *mockStore) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (m *mockStore) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (m *mockStore) Delete(context.Context, string) error                     { return nil }
func (m *mockStore) Ping(context.Context) error                               { return m.pingErr }
