package handler

import (
	"encoding/json"
	"errors"
	"exercisetracker/internal/core"
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/http/payload"
	"net/http"

	"go.uber.org/zap"
)

var (
	ListUsers   = "GET /api/users"
	CreateUser  = "POST /api/users"
	AddExercise = "POST /api/users/{id}/exercises"
	GetLog      = "GET /api/users/{id}/logs"
	Health      = "GET /healthz"
)

type ExerciseHandler struct {
	logs           *zap.SugaredLogger
	requestDecoder RequestDecoder
	tracker        ExerciseTracker
}

func NewExerciseHandler(logger *zap.SugaredLogger, requestDecoder RequestDecoder, tracker ExerciseTracker) *ExerciseHandler {
	return &ExerciseHandler{
		logs:           logger,
		requestDecoder: requestDecoder,
		tracker:        tracker,
	}
}

func (h *ExerciseHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		h.respond(w, ErrorResponse{Error: msgListUsersFailed}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list users",
			"error", err,
			"handler", ListUsers,
			"request_id", requestId)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExerciseHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var request payload.CreateUserRequest
	if err := h.requestDecoder.DecodeBody(r, &request); err != nil {
		msg := msgInvalidBody
		if errors.Is(err, payload.ErrInvalidFields) {
			msg = msgUsernameRequired
		}

		h.respond(w, ErrorResponse{Error: msg}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	user, err := h.tracker.CreateUser(r.Context(), request.Username)
	if err != nil {
		code, msg := http.StatusInternalServerError, msgCreateUserFailed
		switch {
		case errors.Is(err, core.ErrValidation):
			code, msg = http.StatusBadRequest, msgUsernameRequired
		case errors.Is(err, core.ErrUsernameTaken):
			code, msg = http.StatusBadRequest, msgUsernameTaken
		}

		h.respond(w, ErrorResponse{Error: msg}, code, requestId)
		h.logs.Errorw("failed to create user",
			"error", err,
			"username", request.Username,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	h.respond(w, newUserResponse(user), http.StatusOK, requestId)
}

func (h *ExerciseHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := r.PathValue("id")

	var request payload.AddExerciseRequest
	if err := h.requestDecoder.DecodeBody(r, &request); err != nil {
		h.respond(w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddExercise,
			"request_id", requestId)
		return
	}

	input, err := request.ToNewExercise(userID)
	if err != nil {
		h.respond(w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to convert request payload",
			"error", err,
			"handler", AddExercise,
			"request_id", requestId)
		return
	}

	entry, err := h.tracker.AddExercise(r.Context(), input)
	if err != nil {
		code, msg := http.StatusInternalServerError, msgAddFailed
		switch {
		case errors.Is(err, core.ErrValidation):
			code, msg = http.StatusBadRequest, err.Error()
		case errors.Is(err, core.ErrUserNotFound):
			code, msg = http.StatusNotFound, msgUserNotFound
		}

		h.respond(w, ErrorResponse{Error: msg}, code, requestId)
		h.logs.Errorw("failed to add exercise",
			"error", err,
			"user_id", userID,
			"handler", AddExercise,
			"request_id", requestId)
		return
	}

	h.respond(w, newExerciseResponse(entry), http.StatusOK, requestId)
}

func (h *ExerciseHandler) HandleGetLog(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	userID := r.PathValue("id")

	request := payload.NewLogRequest(r.URL.Query())
	if err := request.Validate(); err != nil {
		h.respond(w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetLog,
			"request_id", requestId)
		return
	}

	query, err := request.ToLogQuery(userID)
	if err != nil {
		h.respond(w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to convert query parameters",
			"error", err,
			"handler", GetLog,
			"request_id", requestId)
		return
	}

	log, err := h.tracker.GetLog(r.Context(), query)
	if err != nil {
		code, msg := http.StatusInternalServerError, msgLogFailed
		switch {
		case errors.Is(err, core.ErrValidation):
			code, msg = http.StatusBadRequest, msgInvalidUserID
		case errors.Is(err, core.ErrUserNotFound):
			code, msg = http.StatusNotFound, msgUserNotFound
		}

		h.respond(w, ErrorResponse{Error: msg}, code, requestId)
		h.logs.Errorw("failed to get exercise log",
			"error", err,
			"user_id", userID,
			"handler", GetLog,
			"request_id", requestId)
		return
	}

	h.respond(w, newLogResponse(log), http.StatusOK, requestId)
}

func (h *ExerciseHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *ExerciseHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
