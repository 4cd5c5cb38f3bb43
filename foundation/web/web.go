package web

import (
	"github.com/gin-gonic/gin"
)

// Handler is the signature used by all application handlers in this
// service.
type Handler func(c *Context) error

// Middleware is a function designed to run some code before and/or after
// another Handler.
type Middleware func(Handler) Handler

// App is the entrypoint into our application and what configures our
// context object for each of our http handlers.
type App struct {
	*gin.Engine
}

// NewApp creates an App value that handles a set of routes for the
// application.
func NewApp() *App {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &App{Engine: engine}
}

// wrapMiddleware wraps the handler with the given middleware, first one
// in the slice being the outermost.
func wrapMiddleware(handler Handler, mw []Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			handler = mw[i](handler)
		}
	}
	return handler
}

func (a *App) handle(method string, path string, handler Handler, mw ...Middleware) {
	handler = wrapMiddleware(handler, mw)

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := handler(ctx); err != nil {
			_ = ctx.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle("GET", path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle("POST", path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle("PUT", path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle("PATCH", path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle("DELETE", path, handler, mw...)
}
