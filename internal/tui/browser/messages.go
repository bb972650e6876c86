package browser

import "time"

// searchField is the focused control of the search form.
type searchField int

const (
	fieldTitle searchField = iota
	fieldAuthor
	fieldGenre
	fieldCount
)

// statusTimeout is how long a status line stays visible.
const statusTimeout = 3 * time.Second

// clearStatusMsg removes the status line set under seq. Newer statuses
// survive older timers.
type clearStatusMsg struct {
	seq int
}
