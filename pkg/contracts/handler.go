package contracts

import "github.com/julienschmidt/httprouter"

// Handler is a group of routes mounted by app.Application.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
