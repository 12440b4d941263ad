package requestVersion_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"imageVault/internal/fetcher"
	"imageVault/internal/http-server/handlers/version/requestVersion"
	"imageVault/internal/http-server/handlers/version/requestVersion/mocks"
	"imageVault/internal/lib/logger/handlers/slogdiscard"
	"imageVault/internal/models"
	"imageVault/internal/pipeline"
	"imageVault/internal/uploader"
)

func TestRequestVersion(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()

	const sourceURL = "https://generated.example.com/tmp/image.png"

	storedRecord := &models.ImageVersion{
		ID:          uuid.New(),
		SubjectID:   "nft-42",
		SourceURL:   sourceURL,
		Status:      models.StatusStored,
		ContentHash: sql.NullString{String: "abc123", Valid: true},
		IsCurrent:   true,
	}

	tests := []struct {
		name           string
		body           string
		mockResult     *pipeline.Result
		mockErr        error
		expectMockCall bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			body:           `{"source_url": "` + sourceURL + `", "prompt": "a wizard"}`,
			mockResult:     &pipeline.Result{Record: storedRecord},
			expectMockCall: true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Deduplicated",
			body:           `{"source_url": "` + sourceURL + `"}`,
			mockResult:     &pipeline.Result{Record: storedRecord, Deduplicated: true},
			expectMockCall: true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing source_url",
			body:           `{"prompt": "a wizard"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "field SourceURL is a required field",
		},
		{
			name:           "Invalid source_url",
			body:           `{"source_url": "not a url"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "field SourceURL is not a valid URL",
		},
		{
			name:           "Invalid JSON",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "failed to decode request",
		},
		{
			name:           "Fetch failure maps to bad gateway",
			body:           `{"source_url": "` + sourceURL + `"}`,
			mockErr:        &fetcher.Error{URL: sourceURL, StatusCode: 403},
			expectMockCall: true,
			expectedStatus: http.StatusBadGateway,
			expectedError:  "failed to fetch source image",
		},
		{
			name:           "Storage failure maps to internal error",
			body:           `{"source_url": "` + sourceURL + `"}`,
			mockErr:        &uploader.Error{Backend: "s3", Reason: "quota exceeded"},
			expectMockCall: true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to store image",
		},
		{
			name:           "Ledger failure maps to internal error",
			body:           `{"source_url": "` + sourceURL + `"}`,
			mockErr:        errors.New("db error"),
			expectMockCall: true,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to create image version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requesterMock := mocks.NewVersionRequester(t)

			if tt.expectMockCall {
				requesterMock.On("RequestVersion", mock.Anything, "nft-42", sourceURL, mock.AnythingOfType("string")).
					Return(tt.mockResult, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/subjects/nft-42/images", bytes.NewBufferString(tt.body))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("subjectID", "nft-42")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := requestVersion.New(log, requesterMock)
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
			require.Equal(t, tt.mockResult.Deduplicated, body["deduplicated"])

			record := body["record"].(map[string]interface{})
			require.Equal(t, storedRecord.ID.String(), record["id"])
			require.Equal(t, models.StatusStored, record["status"])
		})
	}
}
