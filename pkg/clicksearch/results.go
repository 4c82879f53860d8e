package clicksearch

import "github.com/anunobi/clicksearch/pkg/clicksearch/screens"

// ListAction is how the user left the search list.
type ListAction int

const (
	ListActionNone     ListAction = iota // Still on the list
	ListActionSelected                   // User selected the focused name (A button)
	ListActionBack                       // User went back (B button)
)

// SearchListResult is returned by SearchList.
type SearchListResult struct {
	Action ListAction
	State  screens.ListState // List state at the moment the screen closed
}

// DetailAction is how the user left the detail screen.
type DetailAction int

const (
	DetailActionNone DetailAction = iota // Still on the detail screen
	DetailActionBack                     // User went back (B button)
)
