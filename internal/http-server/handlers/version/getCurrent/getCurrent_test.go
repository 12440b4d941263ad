package getCurrent_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"imageVault/internal/http-server/handlers/version/getCurrent"
	"imageVault/internal/http-server/handlers/version/getCurrent/mocks"
	"imageVault/internal/lib/logger/handlers/slogdiscard"
	"imageVault/internal/models"
	"imageVault/internal/storage"
)

func TestGetCurrent(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()

	testRecord := &models.ImageVersion{
		ID:          uuid.New(),
		SubjectID:   "nft-42",
		SourceURL:   "https://generated.example.com/tmp/image.png",
		Status:      models.StatusStored,
		ContentHash: sql.NullString{String: "abc123", Valid: true},
		StoredURL:   sql.NullString{String: "http://localhost:8082/blobs/subjects/nft-42/1.png", Valid: true},
		IsCurrent:   true,
		GeneratedAt: time.Now(),
	}

	tests := []struct {
		name           string
		mockRecord     *models.ImageVersion
		mockErr        error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			mockRecord:     testRecord,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "No Current Version",
			mockErr:        storage.ErrNoCurrentVersion,
			expectedStatus: http.StatusNotFound,
			expectedError:  "no current version for subject",
		},
		{
			name:           "Internal Error",
			mockErr:        errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to get current version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getterMock := mocks.NewCurrentGetter(t)
			getterMock.On("GetCurrent", mock.Anything, "nft-42").Return(tt.mockRecord, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/subjects/nft-42/images/current", nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("subjectID", "nft-42")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := getCurrent.New(log, getterMock)
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
			require.Equal(t, testRecord.ID.String(), record["id"])
			require.Equal(t, true, record["is_current"])
			require.Equal(t, models.StatusStored, record["status"])
		})
	}
}
