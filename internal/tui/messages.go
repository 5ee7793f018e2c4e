package tui

import (
	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/domain"
)

// Message types for the TUI

// SearchResultMsg carries the result of search request Seq
type SearchResultMsg struct {
	Seq    uint64
	Query  string
	Movies []domain.MovieSummary
}

// SearchErrMsg carries the failure of search request Seq
type SearchErrMsg struct {
	Seq   uint64
	Query string
	Err   error
}

// DetailDueMsg signals that a debounced selection has waited out its delay
type DetailDueMsg struct {
	Ticket debounce.Ticket
}

// DetailResultMsg carries the result of detail request Seq
type DetailResultMsg struct {
	Seq    uint64
	Detail *domain.MovieDetail
}

// DetailErrMsg carries the failure of detail request Seq
type DetailErrMsg struct {
	Seq uint64
	Err error
}

// StatusMsg shows a transient message in the footer
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}

// LogoutCompleteMsg signals that the stored API key was cleared
type LogoutCompleteMsg struct {
	Err error
}
