package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cleared-dev/rentbook/internal/importer"
	"github.com/cleared-dev/rentbook/internal/insight"
	"github.com/cleared-dev/rentbook/internal/journal"
	"github.com/cleared-dev/rentbook/internal/ledger"
	"github.com/cleared-dev/rentbook/internal/logging"
	"github.com/cleared-dev/rentbook/internal/model"
)

type rowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Imported     int                 `json:"imported"`
	Skipped      int                 `json:"skipped"`
	Errors       []rowError          `json:"errors"`
	Transactions []model.Transaction `json:"transactions"`
}

type failure struct {
	TransactionID string         `json:"transactionId"`
	Category      model.Category `json:"category"`
}

type journalResponse struct {
	Entries    []model.JournalEntry `json:"entries"`
	Failures   []failure            `json:"failures"`
	Violations []string             `json:"violations"`
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "rentbook",
		"transactions": s.store.Len(),
	})
}

func (s *Server) listTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot())
}

func (s *Server) addTransaction(c *gin.Context) {
	var in ledger.ManualInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := ledger.NewTransaction(in, s.manualContra, s.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.store.Add(t); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	s.log.WithField(logging.FieldTransactionID, t.ID).Info("Added transaction")
	c.JSON(http.StatusCreated, t)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	id := c.Param("id")
	if s.store.Delete(id) {
		s.log.WithField(logging.FieldTransactionID, id).Info("Deleted transaction")
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) importTransactions(c *gin.Context) {
	format := c.DefaultQuery("format", "auto")
	p := s.parsers.Get(format)
	if p == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "unknown format: " + format,
			"formats": s.parsers.Formats(),
		})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxImport)
	res, err := p.Parse(c.Request.Body)
	resp := importResponse{
		Skipped:      res.Skipped,
		Errors:       rowErrors(res.Errors),
		Transactions: []model.Transaction{},
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		status := http.StatusBadRequest
		switch {
		case errors.As(err, &tooLarge):
			status = http.StatusRequestEntityTooLarge
		case errors.Is(err, importer.ErrEmptyInput) || errors.Is(err, importer.ErrNoTransactionsParsed):
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error(), "skipped": resp.Skipped, "errors": resp.Errors})
		return
	}

	if err := s.store.AddBatch(res.Transactions); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	resp.Imported = len(res.Transactions)
	resp.Transactions = res.Transactions
	c.JSON(http.StatusOK, resp)
}

func rowErrors(errs []*importer.RowParseError) []rowError {
	out := make([]rowError, 0, len(errs))
	for _, e := range errs {
		out = append(out, rowError{Row: e.Row, Reason: e.Error()})
	}
	return out
}

func (s *Server) getJournal(c *gin.Context) {
	l := ledger.BuildWith(s.store.Snapshot(), s.chart)

	if strings.EqualFold(c.Query("format"), "csv") {
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="general-journal.csv"`)
		c.Status(http.StatusOK)
		if err := journal.WriteEntries(c.Writer, l.Entries); err != nil {
			s.log.WithError(err).Error("writing journal CSV")
		}
		return
	}

	resp := journalResponse{
		Entries:    l.Entries,
		Failures:   make([]failure, 0, len(l.Failures)),
		Violations: make([]string, 0, len(l.Violations)),
	}
	for _, f := range l.Failures {
		resp.Failures = append(resp.Failures, failure{TransactionID: f.TransactionID, Category: f.Category})
	}
	for _, v := range l.Violations {
		resp.Violations = append(resp.Violations, v.Error())
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getReports(c *gin.Context) {
	l := ledger.BuildWith(s.store.Snapshot(), s.chart)
	c.JSON(http.StatusOK, gin.H{
		"incomeStatement": l.Report.Income,
		"balanceSheet":    l.Report.Balance,
		"imbalance":       l.Report.Imbalance,
		"balanced":        l.Report.Balanced(),
	})
}

func (s *Server) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, s.chart.All())
}

func (s *Server) getInsight(c *gin.Context) {
	if s.advisor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "insight is not configured"})
		return
	}
	txns := s.store.Snapshot()
	l := ledger.BuildWith(txns, s.chart)
	text := s.advisor.Advise(c.Request.Context(), insight.Summarize(l.Report, len(txns)))
	c.JSON(http.StatusOK, gin.H{"insight": text})
}
