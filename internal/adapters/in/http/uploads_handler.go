package http

import (
	"net/http"

	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/domain/model/proof"

	"github.com/labstack/echo/v4"
)

// proofFields are checked in order; the first one carrying files wins.
var proofFields = []string{"photos", "photos[]", "photo"}

type proofsResponse struct {
	OK      bool     `json:"ok"`
	OrderID string   `json:"orderId"`
	Paths   []string `json:"paths"`
}

type signatureResponse struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"orderId"`
	Path    string `json:"path"`
}

// UploadProofs handles POST /api/v1/driver/proofs.
func (s *Server) UploadProofs(c echo.Context) error {
	orderID, ok := parseOrderID(c.FormValue("orderId"))
	if !ok {
		return writeError(c, http.StatusBadRequest, CodeMissingFields, "")
	}

	cmd, err := commands.NewUploadProofPhotosCommand(orderID, DriverFrom(c), s.photos(c))
	if err != nil {
		status, code := uploadError(err)
		return writeError(c, status, code, "")
	}

	paths, err := s.handlers.UploadProofs.Handle(c.Request().Context(), cmd)
	if err != nil {
		status, code := uploadError(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("proof upload failed", "order_id", orderID.Int64(), "error", err)
		}
		return writeError(c, status, code, "")
	}

	return c.JSON(http.StatusOK, proofsResponse{OK: true, OrderID: orderID.String(), Paths: paths})
}

// UploadSignature handles POST /api/v1/driver/signature.
func (s *Server) UploadSignature(c echo.Context) error {
	orderID, ok := parseOrderID(c.FormValue("orderId"))
	if !ok {
		return writeError(c, http.StatusBadRequest, CodeMissingFields, "")
	}

	cmd, err := commands.NewUploadSignatureCommand(orderID, DriverFrom(c), s.image(c, "signature", c.FormValue("signatureBase64")))
	if err != nil {
		status, code := uploadError(err)
		return writeError(c, status, code, "")
	}

	path, err := s.handlers.UploadSignature.Handle(c.Request().Context(), cmd)
	if err != nil {
		status, code := uploadError(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("signature upload failed", "order_id", orderID.Int64(), "error", err)
		}
		return writeError(c, status, code, "")
	}

	return c.JSON(http.StatusOK, signatureResponse{OK: true, OrderID: orderID.String(), Path: path})
}

// photos reads every uploaded proof photo, skipping unreadable ones.
func (s *Server) photos(c echo.Context) []proof.Image {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}

	for _, field := range proofFields {
		headers := form.File[field]
		if len(headers) == 0 {
			continue
		}

		images := make([]proof.Image, 0, len(headers))
		for _, fh := range headers {
			img, err := s.readFile(fh)
			if err != nil {
				s.logger.Warn("uploaded photo ignored", "file", fh.Filename, "error", err)
				continue
			}
			images = append(images, img)
		}
		return images
	}
	return nil
}
