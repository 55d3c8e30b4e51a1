package session

import (
	"context"

	"github.com/outofforest/circledrawer"
)

// List is the list type kept in the store.
type List = circledrawer.List[int]

// Store is the interface required from store of named lists.
type Store interface {
	Get(name string) (*List, bool)
	Set(name string, list *List)
	Delete(name string)
}

// HandlerFunc executes single command against the store and returns its printable output.
type HandlerFunc func(ctx context.Context, store Store) (string, error)

// Command is the parsed script line.
type Command struct {
	LineNo      int
	Line        string
	HandlerFunc HandlerFunc
}

// Result is the outcome of executed command.
type Result struct {
	Index  uint64
	LineNo int
	Line   string
	Output string
	Err    error
}
