package requestVersion

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"imageVault/internal/fetcher"
	"imageVault/internal/lib/api/response"
	"imageVault/internal/lib/logger/sl"
	"imageVault/internal/models"
	"imageVault/internal/pipeline"
	"imageVault/internal/uploader"
)

type Request struct {
	SourceURL string `json:"source_url" validate:"required,url"`
	Prompt    string `json:"prompt,omitempty"`
}

type Response struct {
	response.Response
	Record       models.ImageVersion `json:"record"`
	Deduplicated bool                `json:"deduplicated"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VersionRequester
type VersionRequester interface {
	RequestVersion(ctx context.Context, subjectID, sourceURL, prompt string) (*pipeline.Result, error)
}

// New handles a version request for a subject.
// @Summary      Request a new image version
// @Description  Downloads the image at source_url, deduplicates it by content hash and makes it the subject's current version
// @Tags         versions
// @Accept       json
// @Produce      json
// @Param        subjectID  path  string  true  "Subject (token) identifier"
// @Param        request  body  requestVersion.Request  true  "Source URL and prompt metadata"
// @Success      200  {object}  requestVersion.Response
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /subjects/{subjectID}/images [post]
func New(log *slog.Logger, requester VersionRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.version.requestVersion.New"

		log = log.With(
			slog.String("op", op),
		)

		subjectID := chi.URLParam(r, "subjectID")
		if subjectID == "" {
			log.Error("missing subject ID")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("missing subject ID"))
			return
		}

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		result, err := requester.RequestVersion(r.Context(), subjectID, req.SourceURL, req.Prompt)
		if err != nil {
			var fetchErr *fetcher.Error
			if errors.As(err, &fetchErr) {
				log.Error("failed to fetch source image", sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to fetch source image"))
				return
			}

			var storeErr *uploader.Error
			if errors.As(err, &storeErr) {
				log.Error("failed to store image", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to store image"))
				return
			}

			log.Error("failed to create image version", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create image version"))
			return
		}

		log.Info("image version created",
			slog.String("subject_id", subjectID),
			slog.String("record_id", result.Record.ID.String()),
			slog.Bool("deduplicated", result.Deduplicated),
		)

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Record:       *result.Record,
			Deduplicated: result.Deduplicated,
		})
	}
}
