package getCurrent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"imageVault/internal/lib/api/response"
	"imageVault/internal/lib/logger/sl"
	"imageVault/internal/models"
	"imageVault/internal/storage"
)

type Response struct {
	response.Response
	Record models.ImageVersion `json:"record"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CurrentGetter
type CurrentGetter interface {
	GetCurrent(ctx context.Context, subjectID string) (*models.ImageVersion, error)
}

// New returns the subject's current image version.
// @Summary      Get current image version
// @Tags         versions
// @Produce      json
// @Param        subjectID  path  string  true  "Subject (token) identifier"
// @Success      200  {object}  getCurrent.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /subjects/{subjectID}/images/current [get]
func New(log *slog.Logger, getter CurrentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.version.getCurrent.New"

		log = log.With(slog.String("op", op))

		subjectID := chi.URLParam(r, "subjectID")

		record, err := getter.GetCurrent(r.Context(), subjectID)
		if err != nil {
			if errors.Is(err, storage.ErrNoCurrentVersion) {
				log.Warn("no current version", slog.String("subject_id", subjectID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no current version for subject"))
				return
			}

			log.Error("failed to get current version", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get current version"))
			return
		}

		log.Info("current version retrieved", slog.String("subject_id", subjectID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Record:   *record,
		})
	}
}
