package tui

import (
	"github.com/goresan/goresan/internal/ads"
	"github.com/goresan/goresan/internal/domain"
)

// Message types for the TUI

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}

// DoaListLoadedMsg carries the result of a list fetch.
// Token identifies the fetch so stale results can be dropped.
type DoaListLoadedMsg struct {
	Token   uint64
	Records []domain.Doa
	Err     error
}

// DoaDetailLoadedMsg carries the result of a detail load
type DoaDetailLoadedMsg struct {
	Token   uint64
	ID      int
	Records []domain.Doa
	Err     error
}

// AdLoadedMsg carries the outcome of the module races for one ad mount
type AdLoadedMsg struct {
	MountID uint64
	Result  ads.LoadResult
}

// AdEventMsg carries one banner lifecycle event for one ad mount.
// Closed is set when no further events will be delivered.
type AdEventMsg struct {
	MountID uint64
	Event   ads.Event
	Closed  bool
}
