package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"construfin/internal/adapter/http/handlers/mocks"
	"construfin/internal/domain/entities"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPurchaseOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/purchase-orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/purchase-orders", bytes.NewBufferString(`{"project_id":"project-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient funds maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PurchaseOrder{}, &usecase.InsufficientFundsError{
			Scope:     "project",
			ScopeID:   "project-1",
			Available: decimal.NewFromInt(100),
			Required:  decimal.NewFromInt(5000),
		})

		r := gin.New()
		r.POST("/v1/purchase-orders", h.CreateOrder)

		body := `{"project_id":"project-1","supplier_id":"supplier-1","unit_cost":500,"quantity":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/purchase-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "INSUFFICIENT_FUNDS" {
			t.Fatalf("expected code INSUFFICIENT_FUNDS, got %v", resp["code"])
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), usecase.CreatePurchaseOrderInput{
			ProjectID:  "project-1",
			SupplierID: "supplier-1",
			UnitCost:   decimal.NewFromInt(500),
			Quantity:   10,
		}).Return(entities.PurchaseOrder{
			ID:        "order-1",
			ProjectID: "project-1",
			Status:    entities.POStatusSent,
			TotalCost: decimal.NewFromInt(5000),
		}, nil)

		r := gin.New()
		r.POST("/v1/purchase-orders", h.CreateOrder)

		body := `{"project_id":"project-1","supplier_id":"supplier-1","unit_cost":500,"quantity":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/purchase-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["total_cost"] != "5000" {
			t.Fatalf("expected total_cost 5000, got %v", resp["total_cost"])
		}
	})
}

func TestPurchaseOrderHandler_ApproveModification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing approve flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/purchase-orders/:order_id/modification", h.ApproveModification)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchase-orders/order-1/modification", bytes.NewBufferString(`{"auto_commit":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no pending modification maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc)

		uc.EXPECT().ApproveModification(gomock.Any(), "order-1", true, false).
			Return(usecase.ApproveModificationResult{}, usecase.ErrNoPendingModification)

		r := gin.New()
		r.PATCH("/v1/purchase-orders/:order_id/modification", h.ApproveModification)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchase-orders/order-1/modification", bytes.NewBufferString(`{"approve":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("auto-commit returns project summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		h := NewPurchaseOrderHandler(uc)

		summary := entities.FinancialSummary{CommittedTotal: decimal.NewFromInt(6000)}
		uc.EXPECT().ApproveModification(gomock.Any(), "order-1", true, true).
			Return(usecase.ApproveModificationResult{
				Order: entities.PurchaseOrder{
					ID:        "order-1",
					Status:    entities.POStatusModified,
					TotalCost: decimal.NewFromInt(6000),
				},
				ProjectSummary: &summary,
			}, nil)

		r := gin.New()
		r.PATCH("/v1/purchase-orders/:order_id/modification", h.ApproveModification)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchase-orders/order-1/modification", bytes.NewBufferString(`{"approve":true,"auto_commit":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["project_summary"] == nil {
			t.Fatalf("expected project_summary in response, got %v", resp)
		}
	})
}

func TestPurchaseOrderHandler_RejectOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
	h := NewPurchaseOrderHandler(uc)

	retryable := true
	uc.EXPECT().Reject(gomock.Any(), "order-1", "supply", "out_of_stock").Return(entities.PurchaseOrder{
		ID:                   "order-1",
		Status:               entities.POStatusRejected,
		RejectionReason:      "supply",
		RejectionSubcategory: "out_of_stock",
		IsRetryable:          &retryable,
	}, nil)

	r := gin.New()
	r.PATCH("/v1/purchase-orders/:order_id/reject", h.RejectOrder)

	req := httptest.NewRequest(http.MethodPatch, "/v1/purchase-orders/order-1/reject", bytes.NewBufferString(`{"reason_category":"supply","subcategory":"out_of_stock"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["is_retryable"] != true {
		t.Fatalf("expected is_retryable true, got %v", resp["is_retryable"])
	}
}

func TestPurchaseOrderHandler_ListOrdersByProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
	h := NewPurchaseOrderHandler(uc)

	uc.EXPECT().ListByProjectID(gomock.Any(), "project-1").Return([]entities.PurchaseOrder{
		{ID: "order-1", ProjectID: "project-1"},
		{ID: "order-2", ProjectID: "project-1"},
	}, nil)

	r := gin.New()
	r.GET("/v1/projects/:project_id/purchase-orders", h.ListOrdersByProject)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/project-1/purchase-orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(resp))
	}
}

func TestPurchaseOrderHandler_GetOrder_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
	h := NewPurchaseOrderHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PurchaseOrder{}, usecase.ErrOrderNotFound)

	r := gin.New()
	r.GET("/v1/purchase-orders/:order_id", h.GetOrder)

	req := httptest.NewRequest(http.MethodGet, "/v1/purchase-orders/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
