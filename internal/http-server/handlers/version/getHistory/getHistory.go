package getHistory

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"imageVault/internal/lib/api/response"
	"imageVault/internal/lib/logger/sl"
	"imageVault/internal/models"
)

type Response struct {
	response.Response
	Records []models.ImageVersion `json:"records"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HistoryGetter
type HistoryGetter interface {
	GetHistory(ctx context.Context, subjectID string) ([]models.ImageVersion, error)
}

// New returns the full version history for a subject, newest first, failed
// attempts included.
// @Summary      Get image version history
// @Tags         versions
// @Produce      json
// @Param        subjectID  path  string  true  "Subject (token) identifier"
// @Success      200  {object}  getHistory.Response
// @Failure      500  {object}  response.Response
// @Router       /subjects/{subjectID}/images [get]
func New(log *slog.Logger, getter HistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.version.getHistory.New"

		log = log.With(slog.String("op", op))

		subjectID := chi.URLParam(r, "subjectID")

		records, err := getter.GetHistory(r.Context(), subjectID)
		if err != nil {
			log.Error("failed to get version history", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get version history"))
			return
		}

		log.Info("history retrieved",
			slog.String("subject_id", subjectID),
			slog.Int("records", len(records)),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Records:  records,
		})
	}
}
