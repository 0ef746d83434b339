package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/doalist"
	"github.com/goresan/goresan/internal/domain"
	"github.com/goresan/goresan/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateJumping
	StateHelp
)

// Screen identifies the route being shown
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// AdOptions configures the banner slot of every screen
type AdOptions struct {
	Enabled     bool
	Provider    ads.Provider
	Config      ads.Config // Screen is filled from the terminal width per mount
	CellWidthPx float64
}

// Options are the collaborators of the model
type Options struct {
	Repo    domain.DoaRepository
	Ads     AdOptions
	Offline bool
	Logger  *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State  ApplicationState
	Ready  bool
	Screen Screen

	// Collaborators
	Repo   domain.DoaRepository
	Router *Router
	List   *doalist.Controller
	Detail *doalist.Detail
	logger *slog.Logger

	// UI Components
	SearchBar components.SearchBar
	DoaList   components.DoaList
	DoaDetail components.DoaDetail
	Jump      components.JumpModal
	AdBanner  components.AdBanner

	// Ads
	adOpts   AdOptions
	adCtx    context.Context // cancelled when the screen's ad mount ends
	adCancel context.CancelFunc

	// route last mounted; compared with Router.Current after each update
	route string

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	Offline     bool
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := NewRouter()
	favorites := doalist.NewFavorites()

	return Model{
		State:     StateBrowsing,
		Screen:    ScreenList,
		Repo:      opts.Repo,
		Router:    router,
		List:      doalist.NewController(favorites, router, logger),
		Detail:    doalist.NewDetail(favorites, router, logger),
		logger:    logger,
		SearchBar: components.NewSearchBar(),
		DoaList:   components.NewDoaList(),
		DoaDetail: components.NewDoaDetail(),
		Jump:      components.NewJumpModal(),
		adOpts:    opts.Ads,
		Offline:   opts.Offline,
	}
}

// Init initializes the application. Screens mount on the first
// WindowSizeMsg since the ad size depends on the terminal width.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.updateLayout()
		if !m.Ready {
			m.Ready = true
			return m, m.mountRoute()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case DoaListLoadedMsg:
		if m.List.ApplyFetch(msg.Token, msg.Records, msg.Err) {
			m.DoaList.MoveCursor(0, len(m.List.Visible()))
			if msg.Err != nil {
				return m, m.setStatus(describeFetchError(msg.Err, doalist.MsgListLoadFailed), true)
			}
		}
		return m, nil

	case DoaDetailLoadedMsg:
		if m.Detail.ApplyLoad(msg.Token, msg.ID, msg.Records, msg.Err) && msg.Err != nil {
			return m, m.setStatus(describeFetchError(msg.Err, doalist.MsgDetailLoadFailed), true)
		}
		return m, nil

	case AdLoadedMsg:
		return m, m.handleAdLoaded(msg)

	case AdEventMsg:
		return m, m.handleAdEvent(msg)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Keep the text inputs blinking
	var cmd tea.Cmd
	switch m.State {
	case StateSearching:
		m.SearchBar, cmd = m.SearchBar.Update(msg)
	case StateJumping:
		m.Jump, cmd, _ = m.Jump.Update(msg)
	}
	return m, cmd
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	if isErr {
		return ClearStatusCmd(5 * time.Second)
	}
	return ClearStatusCmd(3 * time.Second)
}

// syncRoute mounts the router's current path when it changed during an update
func (m *Model) syncRoute() tea.Cmd {
	if m.Router.Current() == m.route {
		return nil
	}
	return m.mountRoute()
}

// mountRoute mounts the screen for the router's current path: the screen
// fetches its data and gets a fresh ad mount.
func (m *Model) mountRoute() tea.Cmd {
	m.route = m.Router.Current()
	m.State = StateBrowsing
	m.SearchBar.Blur()
	m.Jump.Hide()

	var cmds []tea.Cmd
	if id, ok := domain.ParseDoaPath(m.route); ok {
		m.Screen = ScreenDetail
		token := m.Detail.BeginLoad()
		cmds = append(cmds, LoadDoaDetailCmd(m.Repo, token, id))
	} else {
		m.Screen = ScreenList
		m.DoaList.ResetCursor()
		token := m.List.BeginFetch()
		cmds = append(cmds, FetchDoaListCmd(m.Repo, token))
	}

	cmds = append(cmds, m.mountAd())
	return tea.Batch(cmds...)
}

// updateLayout propagates the terminal size to the components
func (m *Model) updateLayout() {
	m.SearchBar.SetWidth(m.Width - 20)
	m.DoaList.SetWidth(m.Width)
	m.DoaDetail.SetWidth(m.Width)
	m.Jump.SetSize(m.Width, m.Height)
	m.AdBanner.SetWidth(m.Width)
}

// Close releases the current ad mount
func (m Model) Close() {
	if m.adCancel != nil {
		m.adCancel()
	}
	m.AdBanner.Unmount()
}

// describeFetchError maps a fetch error to a short status text.
// Unrecognized errors use fallback.
func describeFetchError(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrAuthFailed):
		return "Token Baserow ditolak, jalankan 'goresan setup'"
	case errors.Is(err, domain.ErrNotConfigured):
		return "Baserow belum dikonfigurasi, jalankan 'goresan setup'"
	case errors.Is(err, domain.ErrNoSnapshot):
		return "Belum ada data tersimpan untuk mode offline"
	case errors.Is(err, domain.ErrOffline):
		return "Tidak dapat terhubung ke server"
	case errors.Is(err, domain.ErrUnexpectedStatus):
		return "Server Baserow sedang bermasalah, coba lagi nanti"
	case errors.Is(err, context.DeadlineExceeded):
		return "Waktu permintaan habis, coba lagi"
	default:
		return fallback
	}
}
