package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"construfin/internal/adapter/http/handlers/mocks"
	"construfin/internal/domain/entities"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "Riverside Towers").Return(entities.Project{
			ID:        "project-1",
			Name:      "Riverside Towers",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}, nil)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Riverside Towers"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "project-1" {
			t.Fatalf("expected project-1, got %v", body["id"])
		}
		if body["capital"] != nil {
			t.Fatalf("expected capital to be null for a fresh project, got %v", body["capital"])
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		r := gin.New()
		r.GET("/v1/projects/:project_id", h.GetProject)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("capital surfaces when set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "project-1").Return(entities.Project{
			ID:      "project-1",
			Name:    "Riverside Towers",
			Capital: entities.SetCeiling(decimal.NewFromInt(100000)),
		}, nil)

		r := gin.New()
		r.GET("/v1/projects/:project_id", h.GetProject)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/project-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["capital"] != "100000" {
			t.Fatalf("expected capital 100000, got %v", body["capital"])
		}
	})
}

func TestProjectHandler_SetBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	uc.EXPECT().SetBudget(gomock.Any(), "project-1", gomock.Any()).
		DoAndReturn(func(_ any, id string, amounts entities.CategoryAmounts) (entities.Project, error) {
			if !amounts.Materials.Equal(decimal.NewFromInt(50000)) {
				t.Fatalf("expected materials 50000, got %s", amounts.Materials)
			}
			return entities.Project{ID: id, Budget: entities.BudgetAllocation{Configured: true, Amounts: amounts}}, nil
		})

	r := gin.New()
	r.PUT("/v1/projects/:project_id/budget", h.SetBudget)

	req := httptest.NewRequest(http.MethodPut, "/v1/projects/project-1/budget", bytes.NewBufferString(`{"amounts":{"materials":50000,"labour":30000}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
