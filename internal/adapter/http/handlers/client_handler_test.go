package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"contractor_pro/internal/adapter/http/handlers/mocks"
	"contractor_pro/internal/domain/entities"
	"contractor_pro/internal/usecase"
	"contractor_pro/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_ListClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc, logger.Discard())

		r := gin.New()
		r.GET("/v1/clients", h.ListClients)

		uc.EXPECT().ListClients(gomock.Any(), "ann").Return([]entities.Client{{ID: "c-1", Name: "Ann"}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/clients?search=ann", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 1 || body[0]["id"] != "c-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc, logger.Discard())

		r := gin.New()
		r.GET("/v1/clients", h.ListClients)

		uc.EXPECT().ListClients(gomock.Any(), "").Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/clients", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc, logger.Discard())

		r := gin.New()
		r.GET("/v1/clients", h.ListClients)

		uc.EXPECT().ListClients(gomock.Any(), "").Return(nil, usecase.ErrStoreNotReady)

		w := performRequest(r, http.MethodGet, "/v1/clients", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockIClientUseCase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid json",
			body:       "{",
			setup:      func(*mocks.MockIClientUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_CLIENT_INPUT",
		},
		{
			name:       "missing name",
			body:       `{"email":"a@b.c"}`,
			setup:      func(*mocks.MockIClientUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_CLIENT_INPUT",
		},
		{
			name: "blank name",
			body: `{"name":"   "}`,
			setup: func(uc *mocks.MockIClientUseCase) {
				uc.EXPECT().CreateClient(gomock.Any(), usecase.CreateClientInput{Name: "   "}).Return(entities.Client{}, entities.ErrInvalidClientName)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_CLIENT_NAME",
		},
		{
			name: "persist failed",
			body: `{"name":"Ann"}`,
			setup: func(uc *mocks.MockIClientUseCase) {
				uc.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
					Return(entities.Client{ID: "c-1", Name: "Ann"}, fmt.Errorf("%w: disk", entities.ErrPersistFailed))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PERSIST_FAILED",
		},
		{
			name: "unexpected error",
			body: `{"name":"Ann"}`,
			setup: func(uc *mocks.MockIClientUseCase) {
				uc.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(entities.Client{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name: "success",
			body: `{"name":"Ann","phone":"555"}`,
			setup: func(uc *mocks.MockIClientUseCase) {
				uc.EXPECT().CreateClient(gomock.Any(), usecase.CreateClientInput{Name: "Ann", Phone: "555"}).
					Return(entities.Client{ID: "c-1", Name: "Ann", Phone: "555"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIClientUseCase(ctrl)
			tc.setup(uc)
			h := NewClientHandler(uc, logger.Discard())

			r := gin.New()
			r.POST("/v1/clients", h.CreateClient)

			w := performRequest(r, http.MethodPost, "/v1/clients", tc.body)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tc.wantStatus, w.Code, w.Body.String())
			}
			var body map[string]any
			decodeBody(t, w, &body)
			if tc.wantCode != "" && body["code"] != tc.wantCode {
				t.Fatalf("expected code %s, got %v", tc.wantCode, body["code"])
			}
			if tc.wantCode == "PERSIST_FAILED" {
				details, _ := body["details"].(map[string]any)
				if details["id"] != "c-1" {
					t.Fatalf("expected created id in details, got %s", w.Body.String())
				}
			}
			if tc.wantStatus == http.StatusCreated && body["id"] != "c-1" {
				t.Fatalf("unexpected response body: %s", w.Body.String())
			}
		})
	}
}
