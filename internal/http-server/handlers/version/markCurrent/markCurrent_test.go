package markCurrent_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"imageVault/internal/http-server/handlers/version/markCurrent"
	"imageVault/internal/http-server/handlers/version/markCurrent/mocks"
	"imageVault/internal/lib/logger/handlers/slogdiscard"
	"imageVault/internal/models"
	"imageVault/internal/storage"
)

func TestMarkCurrent(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()

	testUUID := uuid.New()

	promoted := &models.ImageVersion{
		ID:        testUUID,
		SubjectID: "nft-42",
		Status:    models.StatusStored,
		IsCurrent: true,
	}

	tests := []struct {
		name           string
		recordID       string
		mockRecord     *models.ImageVersion
		mockErr        error
		expectMockCall bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			recordID:       testUUID.String(),
			mockRecord:     promoted,
			expectMockCall: true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid UUID",
			recordID:       "not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid record ID",
		},
		{
			name:           "Not Found",
			recordID:       testUUID.String(),
			mockErr:        storage.ErrRecordNotFound,
			expectMockCall: true,
			expectedStatus: http.StatusNotFound,
			expectedError:  "record not found",
		},
		{
			name:           "Internal Error",
			recordID:       testUUID.String(),
			mockErr:        errors.New("db error"),
			expectMockCall: true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to mark record current",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markerMock := mocks.NewCurrentMarker(t)

			if tt.expectMockCall {
				markerMock.On("MarkCurrent", mock.Anything, testUUID, "nft-42").Return(tt.mockRecord, tt.mockErr).Once()
			}

			url := fmt.Sprintf("/subjects/nft-42/images/%s/current", tt.recordID)
			req := httptest.NewRequest(http.MethodPut, url, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("subjectID", "nft-42")
			rctx.URLParams.Add("recordID", tt.recordID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := markCurrent.New(log, markerMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

			if tt.expectedError != "" {
				require.Equal(t, "Error", body["status"])
				require.Equal(t, tt.expectedError, body["error"])
				return
			}

			require.Equal(t, "OK", body["status"])

			record := body["record"].(map[string]interface{})
			require.Equal(t, testUUID.String(), record["id"])
			require.Equal(t, true, record["is_current"])
		})
	}
}
