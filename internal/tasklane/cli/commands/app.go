package commands

import (
	"github.com/mistakeknot/tasklane/internal/tasklane/board"
	"github.com/mistakeknot/tasklane/internal/tasklane/config"
	"github.com/mistakeknot/tasklane/internal/tasklane/seed"
)

// App is the wired board plus the provider it was seeded from.
type App struct {
	Config   config.Config
	Provider seed.Provider
	Board    *board.Board
}

// Loader builds an App from the root command's flags.
type Loader func() (*App, error)
