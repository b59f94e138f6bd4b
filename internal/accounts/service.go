package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/rentbook/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byCode: byCode}
}

// Default returns a Service over DefaultChart.
func Default() *Service {
	return NewService(DefaultChart())
}

// Load reads accounts/chart-of-accounts.csv under root and returns a Service.
func Load(root string) (*Service, error) {
	path := chartPath(root)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether a postable (non-header) account code exists.
func (s *Service) Exists(code string) bool {
	a, ok := s.byCode[code]
	return ok && a.Type != model.AccountTypeHeader
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// ClassType maps the leading digit of an account code to its AccountType.
func ClassType(code string) (model.AccountType, bool) {
	switch model.Class(code) {
	case '1':
		return model.AccountTypeAsset, true
	case '2':
		return model.AccountTypeLiability, true
	case '3':
		return model.AccountTypeEquity, true
	case '4':
		return model.AccountTypeRevenue, true
	case '5':
		return model.AccountTypeExpense, true
	}
	return "", false
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv under root.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(chartPath(root))
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}

func chartPath(root string) string {
	return filepath.Join(root, "accounts", "chart-of-accounts.csv")
}
