package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/rentbook/internal/model"
)

func TestChaseParser_Parse(t *testing.T) {
	f, err := os.Open("../../testdata/chase_checking.csv")
	require.NoError(t, err)
	defer f.Close()

	p := NewChaseParser(nil)
	res, err := p.Parse(f)
	require.NoError(t, err)
	require.Len(t, res.Transactions, 6)
	assert.Equal(t, 0, res.Skipped)

	first := res.Transactions[0]
	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", first.Description)
	assert.Equal(t, "-4.00", first.Amount.StringFixed(2))
	assert.Equal(t, model.CategoryExpense, first.Category)
	assert.Equal(t, "2025-01-03", first.Date)
	assert.Equal(t, "chase_20250103_GITHUBPROS", first.Reference)

	income := res.Transactions[3]
	assert.Equal(t, model.CategoryRevenue, income.Category)
	assert.Equal(t, "3500.00", income.Amount.StringFixed(2))

	rent := res.Transactions[4]
	assert.Equal(t, "-1200.00", rent.Amount.StringFixed(2))
	assert.Equal(t, "1187", rent.Reference, "check number is the reference")
}

func TestChaseParser_BadRowsSkipped(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n" +
		"DEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n" +
		"DEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n" +
		"DEBIT,01/03/2025,short\n" +
		"DEBIT,01/04/2025,ok,-1.50,ACH_DEBIT,98.50,\n"
	res, err := NewChaseParser(nil).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, "parsing date", res.Errors[0].Reason)
	assert.Equal(t, "parsing amount", res.Errors[1].Reason)
}

func TestChaseParser_HeaderOnly(t *testing.T) {
	_, err := NewChaseParser(nil).Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(NewChaseParser(nil))
	assert.NotNil(t, r.Get("Chase"))
	assert.NotNil(t, r.Get("CHASE"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(NewChaseParser(nil))
	assert.Panics(t, func() { r.Register(NewChaseParser(nil)) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry(nil, nil)
	assert.NotNil(t, r.Get("auto"))
	assert.NotNil(t, r.Get("chase"))
	assert.ElementsMatch(t, []string{"auto", "chase"}, r.Formats())
}

func TestDefaultRegistry_UsesGivenReader(t *testing.T) {
	reader := NewReader(nil)
	reader.ContraAccount = "Kas"
	r := DefaultRegistry(reader, nil)
	assert.Same(t, reader, r.Get("auto"))
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BCA.CSV"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "BCA.CSV", files[0].Name)
	assert.Equal(t, "bank.csv", files[1].Name)
	assert.Equal(t, int64(4), files[1].Size)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, "processed")
	require.NoError(t, os.MkdirAll(processed, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.csv"), []byte("data"), 0o644))

	require.NoError(t, MarkProcessed(dir, "bank.csv"))

	_, err := os.Stat(filepath.Join(dir, "bank.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "processed", "bank.csv"))
	assert.NoError(t, err)
}

func TestMarkProcessed_MissingFile(t *testing.T) {
	err := MarkProcessed(t.TempDir(), "ghost.csv")
	assert.Error(t, err)
}
