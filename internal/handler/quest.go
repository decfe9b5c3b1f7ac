package handler

import (
	"net/http"

	"github.com/osse101/SideQuest_Go/internal/quest"
)

// CreateQuestRequest is the body of POST /api/quests
type CreateQuestRequest struct {
	Content string `json:"content" validate:"required,max=200"`
}

// BulkCreateQuestsRequest is the body of POST /api/quests/bulk
type BulkCreateQuestsRequest struct {
	Contents []string `json:"contents" validate:"required,min=1,max=100,dive,required,max=200"`
}

// UpdateQuestRequest is the body of PATCH /api/quests/{id}
type UpdateQuestRequest struct {
	Content string `json:"content" validate:"required,max=200"`
}

// BulkQuestIDsRequest selects quests for bulk delete
type BulkQuestIDsRequest struct {
	QuestIDs []int64 `json:"questIds" validate:"required,min=1,max=100,dive,gt=0"`
}

// ArchiveQuestRequest is the optional body of POST /api/quests/{id}/archive.
// A missing Archived archives the quest.
type ArchiveQuestRequest struct {
	Archived *bool `json:"archived"`
}

// BulkArchiveRequest is the body of POST /api/quests/bulk-archive
type BulkArchiveRequest struct {
	QuestIDs []int64 `json:"questIds" validate:"required,min=1,max=100,dive,gt=0"`
	Archived *bool   `json:"archived"`
}

// QuestHandler serves the quest pool endpoints
type QuestHandler struct {
	service quest.Service
}

// NewQuestHandler creates a quest handler
func NewQuestHandler(service quest.Service) *QuestHandler {
	return &QuestHandler{service: service}
}

// HandleList returns the caller's quests
// @Summary List quests
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param includeArchived query bool false "Include archived quests"
// @Success 200 {array} domain.Quest
// @Router /api/quests [get]
func (h *QuestHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	includeArchived, ok := GetBoolQueryParam(r, w, "includeArchived", false)
	if !ok {
		return
	}

	quests, err := h.service.List(r.Context(), userID, includeArchived)
	if err != nil {
		respondServiceError(w, r, "List quests", err)
		return
	}
	respondJSON(w, http.StatusOK, quests)
}

// HandleCreate adds one quest
// @Summary Create quest
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateQuestRequest true "Quest"
// @Success 201 {object} domain.Quest
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/quests [post]
func (h *QuestHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	var req CreateQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
		return
	}

	q, err := h.service.Create(r.Context(), userID, req.Content)
	if err != nil {
		respondServiceError(w, r, "Create quest", err)
		return
	}
	respondJSON(w, http.StatusCreated, q)
}

// HandleCreateBulk adds several quests at once
// @Summary Create quests in bulk
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkCreateQuestsRequest true "Quests"
// @Success 201 {array} domain.Quest
// @Router /api/quests/bulk [post]
func (h *QuestHandler) HandleCreateBulk(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	var req BulkCreateQuestsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Bulk create quests"); err != nil {
		return
	}

	quests, err := h.service.CreateBulk(r.Context(), userID, req.Contents)
	if err != nil {
		respondServiceError(w, r, "Bulk create quests", err)
		return
	}
	respondJSON(w, http.StatusCreated, quests)
}

// HandleUpdate edits a quest's text
// @Summary Update quest
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quest id"
// @Param request body UpdateQuestRequest true "New content"
// @Success 200 {object} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /api/quests/{id} [patch]
func (h *QuestHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	id, ok := GetIDParam(r, w, "id")
	if !ok {
		return
	}
	var req UpdateQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update quest"); err != nil {
		return
	}

	q, err := h.service.Update(r.Context(), userID, id, req.Content)
	if err != nil {
		respondServiceError(w, r, "Update quest", err)
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// HandleDelete removes a quest and its daily assignments
// @Summary Delete quest
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quest id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/quests/{id} [delete]
func (h *QuestHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	id, ok := GetIDParam(r, w, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, r, "Delete quest", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDeleted})
}

// HandleDeleteBulk removes several quests
// @Summary Delete quests in bulk
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkQuestIDsRequest true "Quest ids"
// @Success 200 {object} CountResponse
// @Router /api/quests/bulk-delete [post]
func (h *QuestHandler) HandleDeleteBulk(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	var req BulkQuestIDsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Bulk delete quests"); err != nil {
		return
	}

	n, err := h.service.DeleteBulk(r.Context(), userID, req.QuestIDs)
	if err != nil {
		respondServiceError(w, r, "Bulk delete quests", err)
		return
	}
	respondJSON(w, http.StatusOK, CountResponse{Count: n})
}

// HandleArchive archives or restores one quest
// @Summary Archive quest
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quest id"
// @Param request body ArchiveQuestRequest false "Archive flag, defaults to true"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/quests/{id}/archive [post]
func (h *QuestHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	id, ok := GetIDParam(r, w, "id")
	if !ok {
		return
	}
	var req ArchiveQuestRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Archive quest"); err != nil {
			return
		}
	}

	if err := h.service.SetArchived(r.Context(), userID, id, archivedOrDefault(req.Archived)); err != nil {
		respondServiceError(w, r, "Archive quest", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUpdated})
}

// HandleArchiveBulk archives or restores several quests
// @Summary Archive quests in bulk
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkArchiveRequest true "Quest ids and archive flag"
// @Success 200 {object} CountResponse
// @Router /api/quests/bulk-archive [post]
func (h *QuestHandler) HandleArchiveBulk(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	var req BulkArchiveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Bulk archive quests"); err != nil {
		return
	}

	n, err := h.service.ArchiveBulk(r.Context(), userID, req.QuestIDs, archivedOrDefault(req.Archived))
	if err != nil {
		respondServiceError(w, r, "Bulk archive quests", err)
		return
	}
	respondJSON(w, http.StatusOK, CountResponse{Count: n})
}

// HandleDefaults lists the built-in quest catalog
// @Summary Default quest catalog
// @Tags quests
// @Produce json
// @Success 200 {array} domain.DefaultQuest
// @Router /api/quests/defaults [get]
func (h *QuestHandler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Defaults())
}

func archivedOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
