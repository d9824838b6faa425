package handlers

import (
	"github.com/andrewpaige1/nodebook-study/config"
	"github.com/andrewpaige1/nodebook-study/logger"
	"github.com/andrewpaige1/nodebook-study/session"
	"github.com/andrewpaige1/nodebook-study/state"
)

// Handler serves every view over the shared application state.
type Handler struct {
	State    *state.AppState
	Sessions *session.Registry
	Env      config.Environment
	Log      *logger.Logger
}
