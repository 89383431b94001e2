package worker

import (
	abci "github.com/cometbft/cometbft/abci/types"
)

// Command is a message from the worker's owner.
type Command interface {
	command()
}

// EventsCmd delivers the events of a transaction observed on the querying chain.
type EventsCmd struct {
	Height int64
	Events []abci.Event
}

func (EventsCmd) command() {}
