package main

import (
	"context"
	"encoding/gob"

	"github.com/carewell/eldercare/internal/navigation"
)

const navigationSessionKey = "navigationState"

func init() {
	gob.Register(navigation.State{})
}

// navigationState returns the session's navigation state, or the initial
// state for a fresh session.
func (app *application) navigationState(ctx context.Context) navigation.State {
	state, ok := app.sessionManager.Get(ctx, navigationSessionKey).(navigation.State)
	if !ok {
		return navigation.Initial()
	}
	return state
}

// applyEvent folds an event into the session's navigation state and returns
// the resulting state.
func (app *application) applyEvent(ctx context.Context, event navigation.Event) navigation.State {
	state := navigation.Reduce(app.navigationState(ctx), event)
	app.sessionManager.Put(ctx, navigationSessionKey, state)
	return state
}
