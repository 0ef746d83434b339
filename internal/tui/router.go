package tui

import "github.com/goresan/goresan/internal/domain"

// maxHistory bounds the back stack; the oldest entries are dropped first
const maxHistory = 64

// Router is the push/pop navigation stack shared by the screens.
// It implements domain.Navigator.
type Router struct {
	stack []string
}

// NewRouter creates a router positioned at the list screen
func NewRouter() *Router {
	return &Router{stack: []string{domain.HomePath}}
}

// NavigateTo pushes path onto the stack
func (r *Router) NavigateTo(path string) {
	r.stack = append(r.stack, path)
	if len(r.stack) > maxHistory {
		r.stack = r.stack[len(r.stack)-maxHistory:]
	}
}

// GoBack pops the current path. The root entry is never popped.
func (r *Router) GoBack() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Current returns the path on top of the stack
func (r *Router) Current() string {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of entries on the stack
func (r *Router) Depth() int {
	return len(r.stack)
}
