package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"user-directory/internal/http/api"
	"user-directory/internal/lib/sl"
	repo "user-directory/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const projectNameParam = "project_name"

type userService interface {
	List(ctx context.Context, projectName string) ([]api.UserRecord, error)
	Add(ctx context.Context, users []api.NewUser) ([]api.UserRecord, error)
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

type AddUsersRequest struct {
	Users []api.NewUser `json:"users" validate:"required,min=1,dive"`
}

// List responds with 204 and no body when nothing matches, whether or not a
// project filter was given.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	projectName := r.URL.Query().Get(projectNameParam)

	records, err := h.service.List(r.Context(), projectName)
	if err != nil {
		log.Error("error while listing users", sl.Err(err), slog.String(projectNameParam, projectName))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	if len(records) == 0 {
		log.Info("no users found", slog.String(projectNameParam, projectName))
		render.NoContent(w, r)
		return
	}

	log.Info("users listed", slog.Int("count", len(records)))
	render.JSON(w, r, records)
}

func (h *UserHandler) Add(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input AddUsersRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	records, err := h.service.Add(r.Context(), input.Users)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			log.Info("project not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "project not found"))
		case errors.Is(err, repo.ErrUserExists):
			log.Info("user exists", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeUserExists, err.Error()))
		default:
			log.Error("error while saving users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("users created", slog.Int("count", len(records)))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.UsersResponse{Users: records})
}
