package markCurrent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"imageVault/internal/lib/api/response"
	"imageVault/internal/lib/logger/sl"
	"imageVault/internal/models"
	"imageVault/internal/storage"
)

type Response struct {
	response.Response
	Record models.ImageVersion `json:"record"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CurrentMarker
type CurrentMarker interface {
	MarkCurrent(ctx context.Context, recordID uuid.UUID, subjectID string) (*models.ImageVersion, error)
}

// New is the administrative override that makes a historical stored record
// the subject's current version.
// @Summary      Mark a historical version current
// @Tags         versions
// @Produce      json
// @Param        subjectID  path  string  true  "Subject (token) identifier"
// @Param        recordID   path  string  true  "Version record identifier"
// @Success      200  {object}  markCurrent.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /subjects/{subjectID}/images/{recordID}/current [put]
func New(log *slog.Logger, marker CurrentMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.version.markCurrent.New"

		log = log.With(slog.String("op", op))

		subjectID := chi.URLParam(r, "subjectID")

		idStr := chi.URLParam(r, "recordID")
		recordID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse record ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid record ID"))
			return
		}

		record, err := marker.MarkCurrent(r.Context(), recordID, subjectID)
		if err != nil {
			if errors.Is(err, storage.ErrRecordNotFound) {
				log.Warn("record not found",
					slog.String("subject_id", subjectID),
					slog.String("record_id", recordID.String()),
				)
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("record not found"))
				return
			}

			log.Error("failed to mark record current", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to mark record current"))
			return
		}

		log.Info("record marked current",
			slog.String("subject_id", subjectID),
			slog.String("record_id", recordID.String()),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Record:   *record,
		})
	}
}
