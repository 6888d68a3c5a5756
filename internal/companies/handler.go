package companies

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
	"github.com/biztime/biztime/internal/shared"
)

// Handler wires HTTP endpoints for the companies resource.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers company routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Route("/{code}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Delete("/", h.delete)
	})
}

type createCompanyRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	if list == nil {
		list = []Summary{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"companies": list})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	company, err := h.service.Get(r.Context(), code)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	company, err := h.service.Create(r.Context(), Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"company": company})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req updateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	company, err := h.service.Update(r.Context(), code, req.Name, req.Description)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.service.Delete(r.Context(), code); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.Deleted(w)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := shared.StatusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("companies request failed", slog.Any("error", err))
		httpx.Problem(w, status, http.StatusText(status), "")
		return
	}
	httpx.Problem(w, status, http.StatusText(status), err.Error())
}
