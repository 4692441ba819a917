// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/store"
)

type HabitHandler struct {
	store store.HabitStore
}

func NewHabitHandler(s store.HabitStore) *HabitHandler {
	return &HabitHandler{store: s}
}

// ListHabits handles GET /habits
// Returns every habit, newest first
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.store.List(r.Context())
	if err != nil {
		h.internalError(w, r, models.MsgFetchFailed, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habits)
}

// CreateHabit handles POST /habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badBody(w, err)
		return
	}

	if !validName(req.Name) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgNameRequired)
		return
	}

	habit, err := h.store.Create(r.Context(), *req.Name, descriptionOrEmpty(req.Description))
	if err != nil {
		h.internalError(w, r, models.MsgCreateFailed, err)
		return
	}

	slog.Info("habit created", "habit_id", habit.ID, "name", habit.Name)

	middleware.JSONResponse(w, http.StatusCreated, habit)
}

// GetHabit handles GET /habits/{id}
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	habit, err := h.store.Get(r.Context(), id)
	switch store.KindOf(err) {
	case store.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgHabitNotFound)
		return
	case store.KindFailure:
		h.internalError(w, r, models.MsgFetchOneFailed, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habit)
}

// UpdateHabit handles PUT /habits/{id}
// name is required; completedDays is only written when it is a number
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req models.UpdateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		badBody(w, err)
		return
	}

	if !validName(req.Name) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgNameRequired)
		return
	}
	if req.CompletedDays.Set && req.CompletedDays.Value < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgNegativeDays)
		return
	}

	patch := models.HabitPatch{
		Name:          *req.Name,
		Description:   descriptionOrEmpty(req.Description),
		CompletedDays: req.CompletedDays,
	}

	habit, err := h.store.Update(r.Context(), id, patch)
	switch store.KindOf(err) {
	case store.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgHabitNotFound)
		return
	case store.KindFailure:
		h.internalError(w, r, models.MsgUpdateFailed, err)
		return
	}

	slog.Info("habit updated", "habit_id", habit.ID, "completed_days", habit.CompletedDays)

	middleware.JSONResponse(w, http.StatusOK, habit)
}

// DeleteHabit handles DELETE /habits/{id}
// Deleting is not idempotent: a second delete of the same id is a 404
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	err := h.store.Delete(r.Context(), id)
	switch store.KindOf(err) {
	case store.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgHabitNotFound)
		return
	case store.KindFailure:
		h.internalError(w, r, models.MsgDeleteFailed, err)
		return
	}

	slog.Info("habit deleted", "habit_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteHabitResponse{
		Success: true,
		Message: models.MsgHabitDeleted,
	})
}

func (h *HabitHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.RequestID(r.Context()),
		"error", err,
	)
	middleware.ErrorResponseWithDetails(w, http.StatusInternalServerError, msg, err)
}

// parseID reads the {id} path segment. It writes a 400 and returns false
// when the segment is not an integer; the store is never consulted then.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidID)
		return 0, false
	}
	return id, true
}

// badBody answers a body that failed to decode. A name of the wrong JSON
// type is reported like a missing name.
func badBody(w http.ResponseWriter, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "name" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgNameRequired)
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
}

func validName(name *string) bool {
	return name != nil && *name != ""
}

func descriptionOrEmpty(d *string) string {
	if d == nil {
		return ""
	}
	return *d
}
