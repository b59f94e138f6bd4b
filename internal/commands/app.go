package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/rentbook/internal/accounts"
	"github.com/cleared-dev/rentbook/internal/amount"
	"github.com/cleared-dev/rentbook/internal/config"
	"github.com/cleared-dev/rentbook/internal/importer"
	"github.com/cleared-dev/rentbook/internal/ledger"
	"github.com/cleared-dev/rentbook/internal/logging"
)

// app is the state shared by subcommands, filled in by the root command's
// PersistentPreRunE.
type app struct {
	dir      string
	cfgPath  string
	logLevel string
	seed     bool

	cfg         *config.Config
	initialized bool // cfgPath exists
	log         *logrus.Logger
	chart       *accounts.Service
}

func (a *app) setup(stderr io.Writer) error {
	if a.cfgPath == "" {
		a.cfgPath = filepath.Join(a.dir, config.FileName)
	}
	if err := config.LoadEnv(filepath.Join(a.dir, ".env")); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	_, statErr := os.Stat(a.cfgPath)
	a.initialized = statErr == nil

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.log = logging.New(level, cfg.Log.Format)
	a.log.SetOutput(stderr)

	chart, err := accounts.Load(a.dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		chart = accounts.Default()
	case err != nil:
		return err
	}
	a.chart = chart
	return nil
}

// reader returns the heuristic import reader configured from rentbook.yaml.
func (a *app) reader() (*importer.Reader, error) {
	policy, err := a.cfg.DotPolicy()
	if err != nil {
		return nil, err
	}
	r := importer.NewReader(a.log)
	r.Amounts = amount.Parser{SingleDot: policy}
	if a.cfg.Import.ContraAccount != "" {
		r.ContraAccount = a.cfg.Import.ContraAccount
	}
	return r, nil
}

func (a *app) inboxDir() string {
	if filepath.IsAbs(a.cfg.Import.Inbox) {
		return a.cfg.Import.Inbox
	}
	return filepath.Join(a.dir, a.cfg.Import.Inbox)
}

// sources selects where a command's transactions come from.
type sources struct {
	files  []string
	inbox  bool
	format string
}

func (s *sources) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.files, "file", "f", nil, "bank export CSV to import (repeatable)")
	cmd.Flags().BoolVar(&s.inbox, "inbox", false, "import every CSV in the inbox directory")
	cmd.Flags().StringVar(&s.format, "format", "auto", "import format (auto, chase)")
}

// fileResult is the outcome of importing one file.
type fileResult struct {
	Path   string
	Result importer.Result
	Err    error // ErrEmptyInput or ErrNoTransactionsParsed
}

// loadStore builds the working set: sample data when --seed is set, then
// every selected file in order. Files that yield nothing are reported in
// the results, not returned as errors.
func (a *app) loadStore(src sources, extraFiles []string) (*ledger.Store, []fileResult, error) {
	store := &ledger.Store{}
	if a.seed {
		if err := store.AddBatch(ledger.SampleTransactions()); err != nil {
			return nil, nil, err
		}
	}

	paths := append(append([]string{}, src.files...), extraFiles...)
	if src.inbox {
		files, err := importer.Scan(a.inboxDir())
		if err != nil {
			return nil, nil, err
		}
		for _, f := range files {
			paths = append(paths, f.Path)
		}
	}
	if len(paths) == 0 {
		return store, nil, nil
	}

	reader, err := a.reader()
	if err != nil {
		return nil, nil, err
	}
	parser := importer.DefaultRegistry(reader, a.log).Get(src.format)
	if parser == nil {
		return nil, nil, fmt.Errorf("unknown import format %q", src.format)
	}

	results := make([]fileResult, 0, len(paths))
	for _, p := range paths {
		fr, err := a.importFile(parser, p)
		if err != nil {
			return nil, nil, err
		}
		if err := store.AddBatch(fr.Result.Transactions); err != nil {
			return nil, nil, fmt.Errorf("importing %s: %w", p, err)
		}
		results = append(results, fr)
	}
	return store, results, nil
}

func (a *app) importFile(p importer.Parser, path string) (fileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileResult{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := p.Parse(f)
	fr := fileResult{Path: path, Result: res}
	switch {
	case errors.Is(err, importer.ErrEmptyInput), errors.Is(err, importer.ErrNoTransactionsParsed):
		fr.Err = err
		a.log.WithField(logging.FieldFile, path).Warn(err.Error())
	case err != nil:
		return fileResult{}, fmt.Errorf("importing %s: %w", path, err)
	}
	return fr, nil
}
