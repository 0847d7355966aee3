package share

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
	"github.com/MrJamesThe3rd/verhuizer/internal/share"
)

// Handler serves share links: a signed token grants read-only access
// to a project's settlement overview, without any other routes.
type Handler struct {
	svc        *share.Service
	projectSvc *project.Service
	costSvc    *cost.Service
}

func NewHandler(svc *share.Service, projectSvc *project.Service, costSvc *cost.Service) *Handler {
	return &Handler{
		svc:        svc,
		projectSvc: projectSvc,
		costSvc:    costSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{token}", h.view)
}

type createShareRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
}

type createShareResponse struct {
	Token string `json:"token"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.projectSvc.Get(r.Context(), req.ProjectID); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, err := h.svc.Issue(req.ProjectID)
	if err != nil {
		if errors.Is(err, share.ErrSharingDisabled) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(createShareResponse{Token: token}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type sharedSettlementDTO struct {
	FromName    string `json:"from_name"`
	ToName      string `json:"to_name"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
}

type sharedViewResponse struct {
	ProjectName string                `json:"project_name"`
	MovingDate  time.Time             `json:"moving_date"`
	Settlements []sharedSettlementDTO `json:"settlements"`
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	projectID, err := h.svc.Verify(chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, share.ErrSharingDisabled) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		http.Error(w, "invalid or expired link", http.StatusUnauthorized)

		return
	}

	p, err := h.projectSvc.Get(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	people, err := h.projectSvc.People(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	personIDs := make([]uuid.UUID, len(people))
	names := make(map[uuid.UUID]string, len(people))

	for i, person := range people {
		personIDs[i] = person.ID
		names[person.ID] = person.Name
	}

	settlements, err := h.costSvc.Settlements(r.Context(), projectID, personIDs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]sharedSettlementDTO, len(settlements))
	for i, s := range settlements {
		dtos[i] = sharedSettlementDTO{
			FromName:    names[s.FromID],
			ToName:      names[s.ToID],
			AmountCents: s.AmountCents,
			Amount:      cost.FormatCents(s.AmountCents),
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(sharedViewResponse{
		ProjectName: p.Name,
		MovingDate:  p.MovingDate,
		Settlements: dtos,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
