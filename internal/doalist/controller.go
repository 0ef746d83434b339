// Package doalist owns the list and detail state of the doa collection:
// fetch, search filter, pagination, favorites and navigation hand-off.
package doalist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/goresan/goresan/internal/domain"
	"github.com/goresan/goresan/internal/search"
)

const (
	// PageSize is the fixed number of records per page
	PageSize = 6

	// maxPageButtons is the width of the pagination window
	maxPageButtons = 3
)

// User-facing messages
const (
	MsgListLoadFailed = "Gagal memuat daftar doa"
	MsgListEmpty      = "Tidak ada doa tersedia"
)

// Source selects what the visible slice is derived from
type Source int

const (
	SourceAll       Source = iota // all records filtered by the query
	SourceFavorites               // all records filtered to favorites
)

// Controller is the list-view data pipeline.
// It is not safe for concurrent use; the UI loop owns it.
type Controller struct {
	all       []domain.Doa
	query     string
	page      int
	source    Source
	favorites *Favorites

	loading    bool
	errMsg     string
	generation uint64

	nav    domain.Navigator
	logger *slog.Logger
}

// NewController creates an empty controller. favorites may be shared
// with other screens; nil creates a private set.
func NewController(favorites *Favorites, nav domain.Navigator, logger *slog.Logger) *Controller {
	if favorites == nil {
		favorites = NewFavorites()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		page:      1,
		favorites: favorites,
		nav:       nav,
		logger:    logger.With("component", "doalist"),
	}
}

// === Fetch ===

// BeginFetch marks a fetch as in flight and returns its token.
// Tokens increase monotonically; only the latest one is applied.
func (c *Controller) BeginFetch() uint64 {
	c.generation++
	c.loading = true
	c.errMsg = ""
	return c.generation
}

// ApplyFetch applies the outcome of the fetch identified by token.
// It returns false for a stale token, in which case nothing changes.
// On error the previous records are kept; query and page are never reset.
func (c *Controller) ApplyFetch(token uint64, records []domain.Doa, err error) bool {
	if token != c.generation {
		c.logger.Debug("dropping stale fetch", "token", token, "latest", c.generation)
		return false
	}

	c.loading = false
	if err != nil {
		c.logger.Error("error fetching doa list", "error", err)
		c.errMsg = MsgListLoadFailed
		return true
	}

	c.all = records
	c.source = SourceAll
	c.logger.Info("doa list loaded", "count", len(records))
	return true
}

// Fetch performs a complete fetch synchronously
func (c *Controller) Fetch(ctx context.Context, repo domain.DoaRepository) error {
	token := c.BeginFetch()
	records, err := repo.FetchAll(ctx)
	c.ApplyFetch(token, records, err)
	return err
}

// === Queries ===

// SetQuery sets the search text, returns to the all-records source and page 1
func (c *Controller) SetQuery(q string) {
	c.query = q
	c.source = SourceAll
	c.page = 1
}

// ShowFavorites derives the visible slice from the favorites.
// The query is kept in state but ignored while this source is active.
func (c *Controller) ShowFavorites() {
	c.source = SourceFavorites
	c.page = 1
}

// ShowAll clears the query and returns to page 1
func (c *Controller) ShowAll() {
	c.query = ""
	c.source = SourceAll
	c.page = 1
}

// ToggleFavorite flips membership of id. The id is not validated.
func (c *Controller) ToggleFavorite(id int) bool {
	return c.favorites.Toggle(id)
}

// === Pagination ===

// SetPage sets the current page. Any value >= 1 is accepted; pages past
// the end simply render empty.
func (c *Controller) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	c.page = p
}

// NextPage advances when a later page exists
func (c *Controller) NextPage() bool {
	if c.page < c.TotalPages() {
		c.page++
		return true
	}
	return false
}

// PrevPage steps back when not on the first page
func (c *Controller) PrevPage() bool {
	if c.page > 1 {
		c.page--
		return true
	}
	return false
}

// === Navigation ===

// Select hands the record off to the navigator
func (c *Controller) Select(id int) {
	if c.nav == nil {
		return
	}
	c.nav.NavigateTo(domain.DoaPath(id))
}

// === Derived state ===

// Filtered returns the records of the active source, in order
func (c *Controller) Filtered() []domain.Doa {
	if c.source == SourceFavorites {
		return FilterFavorites(c.all, c.favorites)
	}
	return FilterByTitle(c.all, c.query)
}

// Visible returns the current page window of Filtered
func (c *Controller) Visible() []domain.Doa {
	return PageSlice(c.Filtered(), c.page)
}

// TotalPages returns ceil(len(Filtered)/PageSize)
func (c *Controller) TotalPages() int {
	return TotalPages(len(c.Filtered()))
}

// PageButtons returns the pagination window for the current page
func (c *Controller) PageButtons() []int {
	return PageWindow(c.page, c.TotalPages())
}

// EmptyMessage is shown when Visible is empty
func (c *Controller) EmptyMessage() string {
	if c.errMsg != "" {
		return c.errMsg
	}
	return MsgListEmpty
}

func (c *Controller) All() []domain.Doa     { return c.all }
func (c *Controller) Query() string         { return c.query }
func (c *Controller) Page() int             { return c.page }
func (c *Controller) Source() Source        { return c.source }
func (c *Controller) Loading() bool         { return c.loading }
func (c *Controller) Error() string         { return c.errMsg }
func (c *Controller) Favorites() *Favorites { return c.favorites }

// IsFavorite reports whether id is a favorite
func (c *Controller) IsFavorite(id int) bool {
	return c.favorites.Has(id)
}

// Suggestions returns close titles when the active query matches nothing
func (c *Controller) Suggestions(limit int) []string {
	if c.source != SourceAll || strings.TrimSpace(c.query) == "" || len(c.Filtered()) > 0 {
		return nil
	}
	titles := make([]string, len(c.all))
	for i, r := range c.all {
		titles[i] = r.Title
	}
	return search.Suggest(c.query, titles, limit)
}

// FilterByTitle keeps records whose title contains q, case-insensitively.
// An empty or whitespace-only query keeps everything.
func FilterByTitle(records []domain.Doa, q string) []domain.Doa {
	if strings.TrimSpace(q) == "" {
		return records
	}
	needle := strings.ToLower(q)
	var out []domain.Doa
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}

// FilterFavorites keeps records whose id is a favorite, in record order
func FilterFavorites(records []domain.Doa, favorites *Favorites) []domain.Doa {
	var out []domain.Doa
	for _, r := range records {
		if favorites.Has(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
