package v1

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
	"github.com/kurochkinivan/damage_assessor/internal/pipeline"
)

const acceptedImages = "image/jpeg,image/png,image/gif,image/webp,image/heic,image/heif"

//go:embed templates/*.html
var templatesFS embed.FS

var pageFuncs = template.FuncMap{
	"bytes": func(n int64) string { return humanize.Bytes(uint64(max(n, 0))) },
	"date":  func(t time.Time) string { return t.Format("Jan 2, 2006 15:04 MST") },
	"cost":  func(c domain.CostEstimate) string { return c.Range() },
	"assessment": func(o domain.Outcome) *domain.DamageAssessment {
		if a, ok := o.(domain.Assessed); ok {
			return &a.Assessment
		}
		return nil
	},
	"message": domain.AssessmentMessage,
}

type Pages struct {
	log       *slog.Logger
	submitter Submitter
	finder    Finder
	templates map[string]*template.Template
}

func NewPages(log *slog.Logger, submitter Submitter, finder Finder) (*Pages, error) {
	templates := make(map[string]*template.Template)
	for _, name := range []string{"index", "upload", "uploads", "report"} {
		t, err := template.New(name).Funcs(pageFuncs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		templates[name] = t
	}

	return &Pages{
		log:       log,
		submitter: submitter,
		finder:    finder,
		templates: templates,
	}, nil
}

type uploadPage struct {
	Error   string
	Accept  string
	MaxSize string
}

type uploadsPage struct {
	Records []*domain.UploadRecord
}

type reportPage struct {
	Record   *domain.UploadRecord
	ImageURL string
	Message  string
}

func (p *Pages) Index(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, "index", nil)
}

func (p *Pages) UploadForm(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, "upload", newUploadPage(""))
}

func (p *Pages) SubmitUpload(w http.ResponseWriter, r *http.Request) {
	image, err := readImage(w, r)
	if err == nil {
		var submission *domain.Submission
		submission, err = p.submitter.Submit(r.Context(), image)
		if err == nil {
			http.Redirect(w, r, "/uploads/"+submission.UploadID, http.StatusSeeOther)
			return
		}
	}

	status, kind, message := classify(err, "Failed to upload file")
	if status >= http.StatusInternalServerError {
		p.log.ErrorContext(r.Context(), "upload form failed", slog.String("kind", kind), slog.String("err", err.Error()))
	}

	p.render(w, r, status, "upload", newUploadPage(message))
}

func (p *Pages) Uploads(w http.ResponseWriter, r *http.Request) {
	records, err := p.finder.ListRecent(r.Context(), pipeline.DefaultListLimit)
	if err != nil {
		p.renderError(w, r, err, "Failed to retrieve uploads")
		return
	}

	p.render(w, r, http.StatusOK, "uploads", uploadsPage{Records: records})
}

func (p *Pages) Report(w http.ResponseWriter, r *http.Request) {
	record, err := p.finder.GetByID(r.Context(), chi.URLParam(r, "upload_id"))
	if err != nil {
		p.renderError(w, r, err, "Failed to retrieve upload")
		return
	}

	imageURL, err := p.finder.ImageURL(r.Context(), record)
	if err != nil {
		p.log.WarnContext(r.Context(), "failed to presign image url",
			slog.String("upload_id", record.UploadID),
			slog.String("err", err.Error()),
		)
	}

	p.render(w, r, http.StatusOK, "report", reportPage{
		Record:   record,
		ImageURL: imageURL,
		Message:  domain.AssessmentMessage(record.Outcome),
	})
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := p.templates[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		p.log.ErrorContext(r.Context(), "failed to render page", slog.String("page", name), slog.String("err", err.Error()))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (p *Pages) renderError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, kind, message := classify(err, fallback)
	if status >= http.StatusInternalServerError {
		p.log.ErrorContext(r.Context(), "page failed",
			slog.String("path", r.URL.Path),
			slog.String("kind", kind),
			slog.String("err", err.Error()),
		)
	}

	http.Error(w, message, status)
}

func newUploadPage(errMsg string) uploadPage {
	return uploadPage{
		Error:   errMsg,
		Accept:  acceptedImages,
		MaxSize: humanize.IBytes(pipeline.MaxImageSize),
	}
}
