package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/SideQuest_Go/internal/export"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// HandleExport returns a handler that downloads all of the caller's data as JSON
// @Summary Export data
// @Description Full account export as a JSON attachment
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ExportBundle
// @Router /api/export [get]
func HandleExport(svc export.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := RequireUserID(r, w)
		if !ok {
			return
		}

		bundle, filename, err := svc.Build(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Export", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgExportStreamed, "filename", filename)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		respondJSON(w, http.StatusOK, bundle)
	}
}
