package handlers

import (
	"errors"
	"net/http"
	"testing"

	"contractor_pro/internal/adapter/http/handlers/mocks"
	"contractor_pro/internal/usecase"
	mock_interfaces "contractor_pro/internal/usecase/interfaces/mocks"
	"contractor_pro/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		dashboard  usecase.Dashboard
		err        error
		wantStatus int
	}{
		{name: "success", dashboard: usecase.Dashboard{Estimates: 2, Clients: 1, Photos: 4}, wantStatus: http.StatusOK},
		{name: "not ready", err: usecase.ErrStoreNotReady, wantStatus: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIDashboardUseCase(ctrl)
			h := NewDashboardHandler(uc, logger.Discard())

			r := gin.New()
			r.GET("/v1/dashboard", h.GetDashboard)

			uc.EXPECT().Summary(gomock.Any()).Return(tc.dashboard, tc.err)

			w := performRequest(r, http.MethodGet, "/v1/dashboard", "")
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.err == nil {
				var body map[string]any
				decodeBody(t, w, &body)
				if body["estimates"] != 2.0 || body["clients"] != 1.0 || body["photos"] != 4.0 {
					t.Fatalf("unexpected response body: %s", w.Body.String())
				}
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		h := NewHealthHandler(nil)
		r := gin.New()
		r.GET("/v1/ping", h.Ping)

		w := performRequest(r, http.MethodGet, "/v1/ping", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	for _, ready := range []bool{false, true} {
		want := http.StatusServiceUnavailable
		if ready {
			want = http.StatusOK
		}
		t.Run("health", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_interfaces.NewMockIDataStore(ctrl)
			store.EXPECT().Ready().Return(ready)

			h := NewHealthHandler(store)
			r := gin.New()
			r.GET("/v1/health", h.Health)

			w := performRequest(r, http.MethodGet, "/v1/health", "")
			if w.Code != want {
				t.Fatalf("expected %d, got %d", want, w.Code)
			}
			var body map[string]any
			decodeBody(t, w, &body)
			if body["ready"] != ready {
				t.Fatalf("unexpected response body: %s", w.Body.String())
			}
		})
	}
}
