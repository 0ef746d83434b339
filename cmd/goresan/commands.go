package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goresan/goresan/internal/adapter"
	"github.com/goresan/goresan/internal/adapter/source/baserow"
	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/doalist"
)

const fetchTimeout = 30 * time.Second

var (
	listQuery     string
	listPage      int
	adWidthPx     float64
	adPlatform    string
	adWaitTimeout time.Duration
	cacheClearAll bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Cetak satu halaman daftar doa",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.requireConfigured(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
		defer cancel()

		c := doalist.NewController(doalist.NewFavorites(), nil, a.logger)
		if err := c.Fetch(ctx, a.doas); err != nil {
			return fmt.Errorf("%s: %w", doalist.MsgListLoadFailed, err)
		}
		c.SetQuery(listQuery)
		c.SetPage(listPage)

		writeList(cmd.OutOrStdout(), c)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Cetak isi lengkap satu doa",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.requireConfigured(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
		defer cancel()

		d := doalist.NewDetail(doalist.NewFavorites(), nil, a.logger)
		if err := d.Load(ctx, a.doas, id); err != nil {
			return fmt.Errorf("%s: %w", doalist.MsgDetailLoadFailed, err)
		}
		return writeDoa(cmd.OutOrStdout(), d.Current())
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Simpan tabel dan token Baserow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := adapter.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return runSetupFlow(cmd.Context(), cfg)
	},
}

var adCmd = &cobra.Command{
	Use:   "ad",
	Short: "Muat slot iklan sekali dan cetak hasilnya",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if adPlatform != "" {
			a.cfg.Ads.Platform = adPlatform
		}
		opts := a.adOptions()

		cfg := opts.Config
		cfg.Screen.WidthPx = adWidthPx
		if cfg.Screen.WidthPx <= 0 {
			cfg.Screen.WidthPx = terminalWidthPx(opts.CellWidthPx)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), adWaitTimeout)
		defer cancel()

		loader := ads.NewLoader(cfg, opts.Provider, a.logger)
		st := loader.Run(ctx)
		defer loader.Unmount()

		writeAdState(cmd.OutOrStdout(), cfg.Platform, st)
		return nil
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Kelola snapshot offline",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Hapus snapshot offline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cacheClearAll {
			// the store is not opened so its files can be removed
			cfg, err := adapter.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := adapter.ClearCache(cfg.Cache.Dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Semua snapshot dihapus")
			return nil
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.doas.ClearSnapshot(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Snapshot dihapus")
		return nil
	},
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Tampilkan waktu snapshot terakhir",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		if !a.cfg.Cache.Enabled {
			fmt.Fprintln(out, "Cache dinonaktifkan")
			return nil
		}
		at, ok := a.doas.SnapshotTime()
		if !ok {
			fmt.Fprintln(out, "Belum ada snapshot")
			return nil
		}
		fmt.Fprintf(out, "Snapshot terakhir: %s\n", at.Format(time.RFC1123))
		fmt.Fprintf(out, "Lokasi: %s\n", a.cfg.Cache.Dir)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Cetak versi",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "goresan %s\n", Version)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter titles (case-insensitive substring)")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page to print")

	adCmd.Flags().Float64Var(&adWidthPx, "width", 0, "screen width in pixels (default: terminal width)")
	adCmd.Flags().StringVar(&adPlatform, "platform", "", "override the detected platform (android, ios, web, ...)")
	adCmd.Flags().DurationVar(&adWaitTimeout, "timeout", 20*time.Second, "how long to wait for the banner")

	cacheClearCmd.Flags().BoolVar(&cacheClearAll, "all", false, "remove the snapshots of every table")

	cacheCmd.AddCommand(cacheClearCmd, cacheInfoCmd)
}

// terminalWidthPx converts the width of stdout into device pixels
func terminalWidthPx(cellWidthPx float64) float64 {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		cols = 80
	}
	if cellWidthPx <= 0 {
		cellWidthPx = 8
	}
	return float64(cols) * cellWidthPx
}

// runSetupFlow prompts for the table id and token, checks them against
// Baserow and saves the config file
func runSetupFlow(ctx context.Context, cfg *adapter.Config) error {
	fmt.Println()
	fmt.Println("Selamat datang di Goresan Doa!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		tableID, err := prompt(reader, "ID tabel Baserow: ", cfg.Source.TableID)
		if err != nil {
			return err
		}
		token, err := promptSecret(reader, "Token API Baserow: ")
		if err != nil {
			return err
		}
		if tableID == "" || token == "" {
			fmt.Println("ID tabel dan token tidak boleh kosong. Silakan coba lagi.")
			continue
		}

		fmt.Print("Memeriksa koneksi...")
		count, err := checkSource(ctx, cfg.Source.BaseURL, tableID, token, cfg.Source.Timeout)
		fmt.Print(clearLine)
		if err != nil {
			fmt.Printf("✗ Gagal terhubung: %v\n", err)
			fmt.Println("Periksa ID tabel dan token lalu coba lagi.")
			fmt.Println()
			continue
		}
		fmt.Printf("✓ Terhubung, %d doa ditemukan\n", count)

		cfg.Source.TableID = tableID
		cfg.Source.Token = token
		break
	}

	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Printf("✓ Konfigurasi disimpan di %s\n", adapter.ConfigPath())
	fmt.Println()
	fmt.Println("Jalankan goresan lagi untuk mulai membaca.")
	return nil
}

const clearLine = "\r                                    \r"

func prompt(r *bufio.Reader, label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s[%s] ", label, current)
	}
	fmt.Print(label)
	input, err := r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if v := strings.TrimSpace(input); v != "" {
		return v, nil
	}
	return current, nil
}

// promptSecret reads without echo when stdin is a terminal
func promptSecret(r *bufio.Reader, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(r, label, "")
	}
	fmt.Print(label)
	b, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func checkSource(ctx context.Context, baseURL, tableID, token string, timeout time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client := baserow.NewClient(baseURL, token, tableID, timeout, adapter.NullLogger())
	records, err := client.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, errors.New("waktu habis")
		}
		return 0, err
	}
	return len(records), nil
}
