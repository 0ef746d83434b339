package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Doa is a single supplication record from the record store.
// Records are immutable once fetched; a refetch replaces the whole set.
type Doa struct {
	ID          int    // Externally assigned row id
	Title       string // "Nama Do'a"
	Body        string // "Kalimat Do'a" (source-language script)
	Translation string // "Arti Do'a"
}

// Path returns the navigation path of the detail screen for this record
func (d Doa) Path() string {
	return DoaPath(d.ID)
}

// DoaPath formats the detail route for a record id
func DoaPath(id int) string {
	return fmt.Sprintf("/doa/%d", id)
}

// HomePath is the route of the list screen
const HomePath = "/"

// ParseDoaPath extracts the record id from a "/doa/<id>" route
func ParseDoaPath(path string) (int, bool) {
	rest, ok := strings.CutPrefix(path, "/doa/")
	if !ok || rest == "" {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Snapshot is a stored copy of the last successful fetch
type Snapshot struct {
	Records   []Doa `json:"records"`
	FetchedAt int64 `json:"fetchedAt"` // Unix timestamp
}
