package app

import "lol-watcher/internal/domain"

// Message is one requested state transition.
type Message interface {
	message()
}

type (
	Quit        struct{}
	NoOp        struct{}
	ChangeFocus struct{ Pane Pane }

	Search struct {
		Region domain.Region
		Name   string
	}

	MoveSelectionUp   struct{}
	MoveSelectionDown struct{}

	// input buffer editing
	InsertText     struct{ Text string }
	DeleteBackward struct{}
	ClearInput     struct{}
	ReplaceInput   struct{ Text string }

	// SearchCompleted carries the outcome of a Query back into the loop.
	SearchCompleted struct {
		Query  Query
		Result *domain.SearchResult
		Err    error
	}

	Notify struct {
		Kind    LogKind
		Message string
	}
)

func (Quit) message()              {}
func (NoOp) message()              {}
func (ChangeFocus) message()       {}
func (Search) message()            {}
func (MoveSelectionUp) message()   {}
func (MoveSelectionDown) message() {}
func (InsertText) message()        {}
func (DeleteBackward) message()    {}
func (ClearInput) message()        {}
func (ReplaceInput) message()      {}
func (SearchCompleted) message()   {}
func (Notify) message()            {}
