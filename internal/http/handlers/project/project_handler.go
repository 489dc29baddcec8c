package project

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

type projectService interface {
	Add(ctx context.Context, name string) (*api.ProjectSchema, error)
	Get(ctx context.Context, name string) (*api.ProjectSchema, error)
}

type ProjectHandler struct {
	log     *slog.Logger
	service projectService
}

func NewProjectHandler(log *slog.Logger, s projectService) *ProjectHandler {
	return &ProjectHandler{
		log:     log,
		service: s,
	}
}

type ProjectAddRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

func (h *ProjectHandler) Add(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.Add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input ProjectAddRequest

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

	resp, err := h.service.Add(r.Context(), input.Name)
	if err != nil {
		if errors.Is(err, repo.ErrProjectExists) {
			log.Info("project exists", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeProjectExists, err.Error()))
			return
		}
		log.Error("error while saving project", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("project created", slog.String("name", resp.Name))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.ProjectResponse{Project: *resp})
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	name := r.URL.Query().Get("name")
	if name == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "name is required"))
		return
	}

	resp, err := h.service.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("project not found", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving project", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.ProjectResponse{Project: *resp})
}
