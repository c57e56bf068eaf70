package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = "/"

	// ErrNilACSFatalLogMsg is used if app or cfg or svc var pointer is nil.
	ErrNilACSFatalLogMsg = "app, cfg or svc is nil"
)
