package v1

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
	"github.com/kurochkinivan/damage_assessor/internal/pipeline"
)

type Submitter interface {
	Submit(ctx context.Context, image domain.Image) (*domain.Submission, error)
}

type Finder interface {
	GetByID(ctx context.Context, uploadID string) (*domain.UploadRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.UploadRecord, error)
	ImageURL(ctx context.Context, record *domain.UploadRecord) (string, error)
}

type ReportGenerator interface {
	GenerateReport(record *domain.UploadRecord) ([]byte, error)
}

type UploadsHandler struct {
	log       *slog.Logger
	submitter Submitter
	finder    Finder
	reports   ReportGenerator
}

func NewUploadsHandler(log *slog.Logger, submitter Submitter, finder Finder, reports ReportGenerator) *UploadsHandler {
	return &UploadsHandler{
		log:       log,
		submitter: submitter,
		finder:    finder,
		reports:   reports,
	}
}

type UploadResponse struct {
	Success bool `json:"success"`
	*domain.Submission
}

func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	image, err := readImage(w, r)
	if err != nil {
		writeError(w, r, h.log, err, "Failed to upload file")
		return
	}

	submission, err := h.submitter.Submit(r.Context(), image)
	if err != nil {
		writeError(w, r, h.log, err, "Failed to upload file")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{Success: true, Submission: submission})
}

type ListUploadsResponse struct {
	Records []*domain.UploadRecord `json:"records"`
}

func (h *UploadsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, ok := h.listRecords(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ListUploadsResponse{Records: records})
}

type csvRecord struct {
	UploadID        string   `csv:"upload_id"`
	Filename        string   `csv:"filename"`
	ContentType     string   `csv:"content_type"`
	FileSize        int64    `csv:"file_size"`
	StorageKey      string   `csv:"storage_key"`
	UploadedAt      string   `csv:"uploaded_at"`
	Status          string   `csv:"status"`
	Make            string   `csv:"make"`
	Model           string   `csv:"model"`
	Color           string   `csv:"color"`
	CostMin         *float64 `csv:"cost_min"`
	CostMax         *float64 `csv:"cost_max"`
	Currency        string   `csv:"currency"`
	AssessmentError string   `csv:"assessment_error"`
}

func (h *UploadsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records, ok := h.listRecords(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="uploads.csv"`)

	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(records) == 0 {
		if err := enc.EncodeHeader(csvRecord{}); err != nil {
			h.log.ErrorContext(r.Context(), "failed to encode csv header", slog.String("err", err.Error()))
			return
		}
	}

	for _, record := range records {
		if err := enc.Encode(toCSVRecord(record)); err != nil {
			h.log.ErrorContext(r.Context(), "failed to encode csv record", slog.String("err", err.Error()))
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write csv", slog.String("err", err.Error()))
	}
}

func toCSVRecord(record *domain.UploadRecord) csvRecord {
	row := csvRecord{
		UploadID:    record.UploadID,
		Filename:    record.Filename,
		ContentType: record.ContentType,
		FileSize:    record.FileSize,
		StorageKey:  record.StorageKey,
		UploadedAt:  record.UploadedAt.Format(time.RFC3339),
	}

	switch o := record.Outcome.(type) {
	case domain.Assessed:
		row.Status = "assessed"
		row.Make = o.Assessment.Vehicle.Make
		row.Model = o.Assessment.Vehicle.Model
		row.Color = o.Assessment.Vehicle.Color
		cost := o.Assessment.CostEstimate
		row.CostMin, row.CostMax = &cost.Min, &cost.Max
		row.Currency = o.Assessment.CostEstimate.Currency
	case domain.Failed:
		row.Status = "failed"
		row.AssessmentError = o.Reason
	default:
		row.Status = "pending"
	}

	return row
}

type GetUploadResponse struct {
	Record            *domain.UploadRecord `json:"record"`
	ImageURL          string               `json:"imageUrl,omitempty"`
	AssessmentMessage string               `json:"assessmentMessage,omitempty"`
}

func (h *UploadsHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.finder.GetByID(r.Context(), chi.URLParam(r, "upload_id"))
	if err != nil {
		writeError(w, r, h.log, err, "Failed to retrieve upload")
		return
	}

	imageURL, err := h.finder.ImageURL(r.Context(), record)
	if err != nil {
		h.log.WarnContext(r.Context(), "failed to presign image url",
			slog.String("upload_id", record.UploadID),
			slog.String("err", err.Error()),
		)
	}

	writeJSON(w, http.StatusOK, GetUploadResponse{
		Record:            record,
		ImageURL:          imageURL,
		AssessmentMessage: domain.AssessmentMessage(record.Outcome),
	})
}

func (h *UploadsHandler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	record, err := h.finder.GetByID(r.Context(), chi.URLParam(r, "upload_id"))
	if err != nil {
		writeError(w, r, h.log, err, "Failed to retrieve upload")
		return
	}

	pdf, err := h.reports.GenerateReport(record)
	if err != nil {
		writeError(w, r, h.log, err, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+record.UploadID+`.pdf"`)
	w.Write(pdf)
}

func (h *UploadsHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *UploadsHandler) listRecords(w http.ResponseWriter, r *http.Request) ([]*domain.UploadRecord, bool) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, h.log, err, "")
		return nil, false
	}

	records, err := h.finder.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, r, h.log, err, "Failed to retrieve uploads")
		return nil, false
	}

	return records, true
}

func parseLimit(r *http.Request) (int, error) {
	l := r.URL.Query().Get("limit")
	if l == "" {
		return pipeline.DefaultListLimit, nil
	}

	limit, err := strconv.Atoi(l)
	if err != nil || limit < 1 || limit > pipeline.MaxListLimit {
		return 0, fmt.Errorf("%w: invalid limit, must be in [1;%d]", pipeline.ErrInvalidInput, pipeline.MaxListLimit)
	}

	return limit, nil
}
