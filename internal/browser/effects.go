package browser

import "github.com/mmcdole/marquee/internal/debounce"

// Effect is I/O requested by a transition. The shell performs it and feeds
// the outcome back through the matching transition.
type Effect interface {
	effect()
}

// FetchSearch asks for the search endpoint to be called for Query.
// The result must be reported with the same Seq.
type FetchSearch struct {
	Seq   uint64
	Query string
}

// CancelSearch asks the shell to abandon any in-flight search
type CancelSearch struct{}

// ScheduleDetail asks for Ticket to be delivered back via DetailDue once
// Ticket.Delay has elapsed. Any in-flight detail fetch is obsolete.
type ScheduleDetail struct {
	Ticket debounce.Ticket
}

// FetchDetail asks for the detail endpoint to be called for ID
type FetchDetail struct {
	Seq uint64
	ID  string
}

// CancelDetail asks the shell to abandon any in-flight detail fetch
type CancelDetail struct{}

func (FetchSearch) effect()    {}
func (CancelSearch) effect()   {}
func (ScheduleDetail) effect() {}
func (FetchDetail) effect()    {}
func (CancelDetail) effect()   {}
