package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/application/usecases/queries"
	"driverapi/internal/core/domain/model/cash"

	"github.com/labstack/echo/v4"
)

type totalsResponse struct {
	Collected  float64 `json:"collected"`
	Remitted   float64 `json:"remitted"`
	CashInHand float64 `json:"cashInHand"`
}

type remittanceResponse struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Note      *string   `json:"note"`
	Proof     *string   `json:"proof"`
	CreatedAt time.Time `json:"createdAt"`
}

type cashSummaryResponse struct {
	OK          bool                 `json:"ok"`
	Today       totalsResponse       `json:"today"`
	AllTime     totalsResponse       `json:"allTime"`
	Remittances []remittanceResponse `json:"remittances"`
}

type remittanceSubmittedResponse struct {
	cashSummaryResponse
	Remittance remittanceResponse `json:"remittance"`
}

// GetCashSummary handles GET /api/v1/driver/cash-summary.
func (s *Server) GetCashSummary(c echo.Context) error {
	summary, err := s.cashSummary(c)
	if err != nil {
		s.logger.Error("failed to load cash summary", "error", err)
		return writeError(c, http.StatusInternalServerError, CodeServerError, "")
	}
	return c.JSON(http.StatusOK, toCashSummaryResponse(summary))
}

// SubmitRemittance handles POST /api/v1/driver/remittances and answers with
// the refreshed summary.
func (s *Server) SubmitRemittance(c echo.Context) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("amount")), 64)
	if err != nil {
		amount = 0
	}

	var note *string
	if n := strings.TrimSpace(c.FormValue("note")); n != "" {
		note = &n
	}

	cmd, err := commands.NewSubmitRemittanceCommand(DriverFrom(c), amount, note, s.image(c, "proof", ""))
	if err != nil {
		status, code := remittanceError(err)
		return writeError(c, status, code, "")
	}

	remittance, err := s.handlers.SubmitRemittance.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("failed to submit remittance", "error", err)
		status, code := remittanceError(err)
		return writeError(c, status, code, "")
	}

	summary, err := s.cashSummary(c)
	if err != nil {
		s.logger.Error("failed to load cash summary", "error", err)
		return writeError(c, http.StatusInternalServerError, CodeServerError, "")
	}

	return c.JSON(http.StatusOK, remittanceSubmittedResponse{
		cashSummaryResponse: toCashSummaryResponse(summary),
		Remittance:          toRemittanceResponse(remittance),
	})
}

func (s *Server) cashSummary(c echo.Context) (cash.Summary, error) {
	query, err := queries.NewGetCashSummaryQuery(DriverFrom(c).ID())
	if err != nil {
		return cash.Summary{}, err
	}
	return s.handlers.CashSummary.Handle(c.Request().Context(), query)
}

func toCashSummaryResponse(summary cash.Summary) cashSummaryResponse {
	resp := cashSummaryResponse{
		OK:          true,
		Today:       toTotalsResponse(summary.Today),
		AllTime:     toTotalsResponse(summary.AllTime),
		Remittances: make([]remittanceResponse, 0, len(summary.Recent)),
	}
	for _, r := range summary.Recent {
		resp.Remittances = append(resp.Remittances, toRemittanceResponse(r))
	}
	return resp
}

func toTotalsResponse(t cash.Totals) totalsResponse {
	return totalsResponse{
		Collected:  t.Collected.Float64(),
		Remitted:   t.Remitted.Float64(),
		CashInHand: t.CashInHand().Float64(),
	}
}

func toRemittanceResponse(r *cash.Remittance) remittanceResponse {
	return remittanceResponse{
		ID:        r.ID().Int64(),
		Amount:    r.Amount().Float64(),
		Note:      r.Note(),
		Proof:     r.ProofPath(),
		CreatedAt: r.CreatedAt(),
	}
}
