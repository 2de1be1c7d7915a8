package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/proof"

	"github.com/labstack/echo/v4"
)

// flexString accepts a JSON string or number, as the mobile app sends both.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// statusRequest is the body of POST /status as JSON, urlencoded or multipart form.
type statusRequest struct {
	OrderID         flexString `json:"orderId" form:"orderId"`
	Status          string     `json:"status" form:"status"`
	CollectedAmount flexString `json:"collectedAmount" form:"collectedAmount"`
	ProofBase64     string     `json:"proofBase64" form:"proofBase64"`
}

func bindStatusRequest(c echo.Context) (statusRequest, error) {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return statusRequest{}, err
	}
	return req, nil
}

// parseAmount returns nil for blank or non-numeric input.
func parseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOrderID(s string) (kernel.ID, bool) {
	id, err := kernel.ParseID(s)
	return id, err == nil
}

// formFile reads an optional uploaded file. A missing file yields an empty image.
func (s *Server) formFile(c echo.Context, field string) (proof.Image, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return proof.Image{}, nil
	}
	if err != nil {
		return proof.Image{}, err
	}
	return s.readFile(fh)
}

func (s *Server) readFile(fh *multipart.FileHeader) (proof.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return proof.Image{}, err
	}
	defer f.Close()

	return proof.FromFile(fh.Filename, f, s.uploadMaxBytes)
}

// image prefers the uploaded file and falls back to a base64 field. Unreadable
// or oversized images are logged and treated as absent.
func (s *Server) image(c echo.Context, fileField, base64Value string) proof.Image {
	img, err := s.formFile(c, fileField)
	if err != nil {
		s.logger.Warn("uploaded image ignored", "field", fileField, "error", err)
	}
	if !img.IsEmpty() || strings.TrimSpace(base64Value) == "" {
		return img
	}

	img, err = proof.FromBase64(base64Value, s.uploadMaxBytes)
	if err != nil {
		s.logger.Warn("base64 image ignored", "field", fileField, "error", err)
		return proof.Image{}
	}
	return img
}
