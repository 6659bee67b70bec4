package measure

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enildoa/sp-back/internal/measure"
)

type Handler struct {
	svc *measure.Service
}

func NewHandler(svc *measure.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/upload", h.upload)
	r.Get("/{customerCode}/list", h.list)
	r.Patch("/confirm", h.confirm)
}

type uploadResponse struct {
	ImageURL     string          `json:"image_url"`
	MeasureValue decimal.Decimal `json:"measure_value"`
	MeasureID    uuid.UUID       `json:"measure_id"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(measure.MaxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DATA", "failed to parse form: "+err.Error())
		return
	}

	datetime, err := time.Parse(time.RFC3339, r.FormValue("measure_datetime"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DATA", "measure_datetime must be a valid RFC 3339 timestamp")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DATA", "image file is required")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, measure.MaxImageBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DATA", "failed to read image: "+err.Error())
		return
	}

	m, err := h.svc.Submit(r.Context(), measure.SubmitParams{
		CustomerCode: r.FormValue("customer_code"),
		MeasureType:  r.FormValue("measure_type"),
		Datetime:     datetime,
		Image:        image,
		ContentType:  header.Header.Get("Content-Type"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		ImageURL:     m.ImageURL,
		MeasureValue: m.Value,
		MeasureID:    m.ID,
	})
}

type measureResponse struct {
	MeasureUUID     uuid.UUID    `json:"measure_uuid"`
	MeasureDatetime time.Time    `json:"measure_datetime"`
	MeasureType     measure.Type `json:"measure_type"`
	HasConfirmed    bool         `json:"has_confirmed"`
	ImageURL        string       `json:"image_url"`
}

type listResponse struct {
	CustomerCode string            `json:"customer_code"`
	Measures     []measureResponse `json:"measures"`
}

// The listing intentionally omits measure_value; confirmation is the channel
// that reveals it.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customerCode := chi.URLParam(r, "customerCode")

	measures, err := h.svc.List(r.Context(), customerCode, r.URL.Query().Get("measure_type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := listResponse{
		CustomerCode: customerCode,
		Measures:     make([]measureResponse, 0, len(measures)),
	}

	for _, m := range measures {
		resp.Measures = append(resp.Measures, measureResponse{
			MeasureUUID:     m.ID,
			MeasureDatetime: m.Datetime,
			MeasureType:     m.Type,
			HasConfirmed:    m.HasConfirmed,
			ImageURL:        m.ImageURL,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type confirmRequest struct {
	MeasureUUID    string          `json:"measure_uuid"`
	ConfirmedValue decimal.Decimal `json:"confirmed_value"`
}

type confirmResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DATA", "invalid request body: "+err.Error())
		return
	}

	id, err := uuid.Parse(req.MeasureUUID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DATA", "measure_uuid must be a valid UUID")
		return
	}

	if err := h.svc.Confirm(r.Context(), id, req.ConfirmedValue); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmResponse{Success: true})
}

type errorResponse struct {
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, measure.ErrInvalidType):
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "Tipo de medição não permitida")
	case errors.Is(err, measure.ErrInvalidData):
		writeError(w, http.StatusBadRequest, "INVALID_DATA", err.Error())
	case errors.Is(err, measure.ErrDoubleReport):
		writeError(w, http.StatusConflict, "DOUBLE_REPORT", "Leitura do mês já realizada")
	case errors.Is(err, measure.ErrAlreadyConfirmed):
		writeError(w, http.StatusConflict, "CONFIRMATION_DUPLICATE", "Leitura do mês já realizada")
	case errors.Is(err, measure.ErrNotFound):
		writeError(w, http.StatusNotFound, "MEASURE_NOT_FOUND", "Leitura não encontrada")
	case errors.Is(err, measure.ErrNoMeasures):
		writeError(w, http.StatusNotFound, "MEASURES_NOT_FOUND", "Nenhuma leitura encontrada")
	default:
		slog.Error("measure request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, errorResponse{
		ErrorCode:        code,
		ErrorDescription: description,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
