package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/importer"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

type Handler struct {
	importSvc  *importer.Service
	costSvc    *cost.Service
	projectSvc *project.Service
}

func NewHandler(importSvc *importer.Service, costSvc *cost.Service, projectSvc *project.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		costSvc:    costSvc,
		projectSvc: projectSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type expenseResponse struct {
	ID           uuid.UUID     `json:"id"`
	ProjectID    uuid.UUID     `json:"project_id"`
	Description  string        `json:"description"`
	AmountCents  int64         `json:"amount_cents"`
	PaidByID     uuid.UUID     `json:"paid_by_id"`
	SplitBetween []uuid.UUID   `json:"split_between"`
	Date         time.Time     `json:"date"`
	Category     cost.Category `json:"category"`
	CreatedAt    time.Time     `json:"created_at"`
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	Expenses []expenseResponse `json:"expenses"`
}

type createParamsDTO struct {
	ProjectID    uuid.UUID     `json:"project_id"`
	Description  string        `json:"description"`
	AmountCents  int64         `json:"amount_cents"`
	PaidByID     uuid.UUID     `json:"paid_by_id"`
	SplitBetween []uuid.UUID   `json:"split_between"`
	Date         time.Time     `json:"date"`
	Category     cost.Category `json:"category"`
}

type conflictDTO struct {
	Incoming createParamsDTO `json:"incoming"`
	Existing expenseResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []createParamsDTO `json:"new"`
	Conflicts []conflictDTO     `json:"conflicts"`
}

type confirmRequest struct {
	Params []createParamsDTO `json:"params"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	projectID, err := uuid.Parse(r.FormValue("project_id"))
	if err != nil {
		http.Error(w, "project_id field is required", http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatSplitCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Parse(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	people, err := h.projectSvc.People(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	params, err := h.importSvc.ToCreateParams(projectID, rows, people)
	if err != nil {
		if errors.Is(err, cost.ErrUnknownParticipant) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	result, err := h.costSvc.ImportBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]createParamsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}
		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toExpenseResponse(c.Existing),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(result.Imported)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]cost.CreateParams, 0, len(req.Params))
	for _, p := range req.Params {
		params = append(params, cost.CreateParams{
			ProjectID:    p.ProjectID,
			Description:  p.Description,
			AmountCents:  p.AmountCents,
			PaidByID:     p.PaidByID,
			SplitBetween: p.SplitBetween,
			Date:         p.Date,
			Category:     p.Category,
		})
	}

	expenses, err := h.costSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(expenses)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(expenses []*cost.Expense) importSuccessResponse {
	responses := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}

	return importSuccessResponse{
		Imported: len(expenses),
		Expenses: responses,
	}
}

func toExpenseResponse(e *cost.Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		ProjectID:    e.ProjectID,
		Description:  e.Description,
		AmountCents:  e.AmountCents,
		PaidByID:     e.PaidByID,
		SplitBetween: e.SplitBetween,
		Date:         e.Date,
		Category:     e.Category,
		CreatedAt:    e.CreatedAt,
	}
}

func toParamsDTO(p cost.CreateParams) createParamsDTO {
	return createParamsDTO{
		ProjectID:    p.ProjectID,
		Description:  p.Description,
		AmountCents:  p.AmountCents,
		PaidByID:     p.PaidByID,
		SplitBetween: p.SplitBetween,
		Date:         p.Date,
		Category:     p.Category,
	}
}
