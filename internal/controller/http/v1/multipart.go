package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kurochkinivan/damage_assessor/internal/domain"
	"github.com/kurochkinivan/damage_assessor/internal/pipeline"
)

const (
	fileField = "file"

	// room for multipart boundaries and headers on top of the image ceiling
	multipartOverhead = 1 << 20
	maxRequestBytes   = pipeline.MaxImageSize + multipartOverhead
	maxMemory         = 32 << 20
)

// readImage extracts the single file field of a multipart request.
// Problems with the payload are reported as pipeline.ErrInvalidInput.
func readImage(w http.ResponseWriter, r *http.Request) (domain.Image, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.Image{}, fmt.Errorf("%w: file is too large, maximum size is 10MB", pipeline.ErrInvalidInput)
		}
		return domain.Image{}, fmt.Errorf("%w: invalid multipart payload: %w", pipeline.ErrInvalidInput, err)
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File
	headers := files[fileField]
	if len(headers) == 0 {
		return domain.Image{}, fmt.Errorf("%w: no file provided", pipeline.ErrInvalidInput)
	}
	if len(files) != 1 || len(headers) != 1 {
		return domain.Image{}, fmt.Errorf("%w: exactly one file is expected", pipeline.ErrInvalidInput)
	}

	header := headers[0]

	f, err := header.Open()
	if err != nil {
		return domain.Image{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Image{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return domain.Image{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
