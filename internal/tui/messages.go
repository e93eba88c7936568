package tui

import "github.com/jask/eventpanel/internal/service"

type catalogMsg service.CatalogView

type statusMsg string

type errMsg struct{ error }
