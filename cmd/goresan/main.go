package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goresan/goresan/internal/adapter"
	"github.com/goresan/goresan/internal/adapter/source/baserow"
	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/ads/house"
	"github.com/goresan/goresan/internal/service"
	"github.com/goresan/goresan/internal/store"
	"github.com/goresan/goresan/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	offline bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "goresan",
	Short: "Goresan Doa - baca dan cari doa dari terminal",
	Long: `Goresan Doa menampilkan kumpulan doa dari tabel Baserow.

Jalankan tanpa argumen untuk membuka tampilan interaktif, atau gunakan
subcommand untuk mencetak daftar dan isi doa langsung ke terminal.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "read the last saved snapshot instead of the network")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(listCmd, showCmd, setupCmd, adCmd, cacheCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the collaborators shared by every command
type app struct {
	cfg    *adapter.Config
	logger *slog.Logger
	client *baserow.Client
	doas   *service.DoaService

	closers []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

// newApp loads the configuration and wires the record source. The snapshot
// store is partitioned by base URL and table id.
func newApp() (*app, error) {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "DEBUG"
	}

	a := &app{cfg: cfg}

	logger, closer, err := adapter.SetupLogger(cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		a.closers = append(a.closers, closer)
	}
	slog.SetDefault(logger)
	a.logger = logger

	a.client = baserow.NewClient(cfg.Source.BaseURL, cfg.Source.Token, cfg.Source.TableID, cfg.Source.Timeout, logger)

	cacheDir := ""
	if cfg.Cache.Enabled {
		cacheDir = cfg.Cache.Dir
	}
	snapshots, err := store.NewSnapshotStore(cacheDir, store.SourceKey(cfg.Source.BaseURL, cfg.Source.TableID))
	if err != nil {
		logger.Warn("snapshot store unavailable, using memory", "error", err)
		snapshots, _ = store.NewSnapshotStore("", "")
	}
	a.closers = append(a.closers, snapshots)

	a.doas = service.NewDoaService(a.client, snapshots, offline, logger)
	return a, nil
}

// requireConfigured fails with a pointer to setup unless a table id and
// token are available. Offline mode only needs a snapshot.
func (a *app) requireConfigured() error {
	if offline || a.cfg.IsConfigured() {
		return nil
	}
	return errors.New("Baserow belum dikonfigurasi, jalankan 'goresan setup' atau isi GORESAN_SOURCE_TABLE_ID dan GORESAN_SOURCE_TOKEN")
}

// adOptions builds the banner slot settings from the configuration
func (a *app) adOptions() tui.AdOptions {
	c := a.cfg.Ads
	platform := ads.DetectPlatform(c.Platform)

	var native ads.Provider = ads.NoopProvider{}
	if c.CreativesTableID != "" && a.cfg.Source.Token != "" && !offline {
		native = house.NewProvider(a.client, c.CreativesTableID, c.RefreshInterval, a.logger)
	}

	return tui.AdOptions{
		Enabled:  c.Enabled,
		Provider: ads.ProviderFor(platform, native),
		Config: ads.Config{
			Platform:       platform,
			Screen:         ads.Screen{Density: c.PixelDensity},
			UnitID:         c.UnitID,
			TestMode:       c.TestMode,
			RequestOptions: ads.RequestOptions{NetworkExtras: map[string]string{"collapsible": "bottom"}},
			AcquireTimeout: c.AcquireTimeout,
			InitTimeout:    c.InitTimeout,
		},
		CellWidthPx: c.CellWidthPx,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting goresan", "version", Version, "offline", offline)

	if err := a.requireConfigured(); err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Repo:    a.doas,
		Ads:     a.adOptions(),
		Offline: offline,
		Logger:  a.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	a.logger.Info("starting TUI")

	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Close()
	}
	if err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}
