// Package insight asks a generative model for short business advice based on
// the current statements. Nothing in the accounting engine depends on it.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/cleared-dev/rentbook/internal/amount"
	"github.com/cleared-dev/rentbook/internal/logging"
	"github.com/cleared-dev/rentbook/internal/statement"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Messages returned in place of generated text.
const (
	NoResponse    = "No response generated."
	ErrorResponse = "Error generating content. Please check your API key."
)

// ErrNoAPIKey is returned by NewGeminiGenerator without a key.
var ErrNoAPIKey = errors.New("insight API key not set")

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator creates a client authenticated with apiKey.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiGenerator{client: client}, nil
}

// Generate returns the text parts of the first candidate, joined.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = DefaultModel
	}
	resp, err := g.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Summary is the figure set the prompt is built from.
type Summary struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	Transactions int             `json:"transactions"`
}

// Summarize takes the income figures from a report.
func Summarize(r statement.Report, transactions int) Summary {
	return Summary{
		Revenue:      r.Income.Revenue,
		Expenses:     r.Income.Expenses,
		NetIncome:    r.Income.NetIncome,
		Transactions: transactions,
	}
}

// BuildPrompt renders the CFO prompt for s.
func BuildPrompt(business string, s Summary) string {
	if business == "" {
		business = "a motorcycle rental business"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Act as a CFO for %s.\n", business)
	b.WriteString("Analyze these stats:\n")
	fmt.Fprintf(&b, "Revenue: %s, Expenses: %s, Net Profit: %s.\n",
		amount.Format(s.Revenue), amount.Format(s.Expenses), amount.Format(s.NetIncome))
	fmt.Fprintf(&b, "Transactions recorded: %d.\n\n", s.Transactions)
	b.WriteString("Provide a brief, strategic advice paragraph (max 3 sentences) focusing on profitability and cash position.")
	return b.String()
}

// Advisor turns summaries into advice text.
type Advisor struct {
	Gen      Generator
	Model    string
	Business string
	Log      *logrus.Logger
}

// Advise never fails: generator errors become ErrorResponse and empty
// output becomes NoResponse.
func (a *Advisor) Advise(ctx context.Context, s Summary) string {
	log := logging.OrDiscard(a.Log)
	text, err := a.Gen.Generate(ctx, BuildPrompt(a.Business, s), a.Model)
	if err != nil {
		log.WithError(err).WithField(logging.FieldOperation, "insight").Error("generating insight")
		return ErrorResponse
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return NoResponse
	}
	return text
}
