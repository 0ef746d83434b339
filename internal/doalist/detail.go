package doalist

import (
	"context"
	"log/slog"

	"github.com/goresan/goresan/internal/domain"
)

// User-facing messages of the detail screen
const (
	MsgDetailLoadFailed = "Gagal memuat data doa"
	MsgDetailNotFound   = "Doa tidak ditemukan"
)

// Detail is the state of the detail screen: the full list (for
// previous/next) and the record being read.
type Detail struct {
	all       []domain.Doa
	current   *domain.Doa
	favorites *Favorites

	loading    bool
	errMsg     string
	generation uint64

	nav    domain.Navigator
	logger *slog.Logger
}

// NewDetail creates a detail controller sharing favorites with the list
func NewDetail(favorites *Favorites, nav domain.Navigator, logger *slog.Logger) *Detail {
	if favorites == nil {
		favorites = NewFavorites()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detail{
		favorites: favorites,
		nav:       nav,
		logger:    logger.With("component", "doadetail"),
	}
}

// BeginLoad marks a load as in flight and returns its token
func (d *Detail) BeginLoad() uint64 {
	d.generation++
	d.loading = true
	d.errMsg = ""
	return d.generation
}

// ApplyLoad selects id from records. A missing id falls back to the first
// record. Stale tokens are ignored.
func (d *Detail) ApplyLoad(token uint64, id int, records []domain.Doa, err error) bool {
	if token != d.generation {
		return false
	}

	d.loading = false
	if err != nil {
		d.logger.Error("error fetching doa data", "id", id, "error", err)
		d.errMsg = MsgDetailLoadFailed
		return true
	}

	d.all = records
	d.current = nil
	for i := range records {
		if records[i].ID == id {
			d.current = &records[i]
			break
		}
	}
	if d.current == nil && len(records) > 0 {
		d.logger.Debug("doa not found, showing first", "id", id)
		d.current = &records[0]
	}
	return true
}

// Load fetches and selects id synchronously
func (d *Detail) Load(ctx context.Context, repo domain.DoaRepository, id int) error {
	token := d.BeginLoad()
	records, err := repo.FetchAll(ctx)
	d.ApplyLoad(token, id, records, err)
	return err
}

// Current returns the record being read, or nil
func (d *Detail) Current() *domain.Doa {
	return d.current
}

// Message returns the error or not-found text, "" when a record is shown
func (d *Detail) Message() string {
	if d.errMsg != "" {
		return d.errMsg
	}
	if d.current == nil {
		return MsgDetailNotFound
	}
	return ""
}

func (d *Detail) Loading() bool { return d.loading }

// Next navigates to the following record, wrapping at the end
func (d *Detail) Next() {
	d.step(1)
}

// Previous navigates to the preceding record, wrapping at the start
func (d *Detail) Previous() {
	d.step(-1)
}

func (d *Detail) step(delta int) {
	if d.current == nil || len(d.all) == 0 || d.nav == nil {
		return
	}
	idx := d.indexOf(d.current.ID)
	n := len(d.all)
	next := ((idx+delta)%n + n) % n
	d.nav.NavigateTo(d.all[next].Path())
}

// indexOf returns the position of id, or -1
func (d *Detail) indexOf(id int) int {
	for i, r := range d.all {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Back returns to the previous screen
func (d *Detail) Back() {
	if d.nav != nil {
		d.nav.GoBack()
	}
}

// Home goes to the list screen
func (d *Detail) Home() {
	if d.nav != nil {
		d.nav.NavigateTo(domain.HomePath)
	}
}

// ToggleFavorite flips the current record's favorite flag
func (d *Detail) ToggleFavorite() bool {
	if d.current == nil {
		return false
	}
	return d.favorites.Toggle(d.current.ID)
}

// IsFavorite reports whether the current record is a favorite
func (d *Detail) IsFavorite() bool {
	return d.current != nil && d.favorites.Has(d.current.ID)
}
