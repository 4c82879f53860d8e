package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRoute is returned by ParseRoute for paths that match no route pattern.
var ErrUnknownRoute = errors.New("router: unknown route")

// Kind identifies a route independently of its parameters.
// The zero value matches no route.
type Kind int

const (
	KindNone Kind = iota
	KindMain
	KindDetail
)

const (
	mainPath     = "main"
	detailPrefix = "details"
)

// Pattern returns the path template registered for the kind.
func (k Kind) Pattern() string {
	switch k {
	case KindMain:
		return mainPath
	case KindDetail:
		return detailPrefix + "/{name}"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "main"
	case KindDetail:
		return "detail"
	default:
		return "none"
	}
}

// Kinds returns every routable kind in registration order.
func Kinds() []Kind {
	return []Kind{KindMain, KindDetail}
}

// Route is a screen identifier plus its typed parameters.
// MainRoute and DetailRoute are the only implementations.
type Route interface {
	Kind() Kind
	// Path encodes the route as "main" or "details/{name}".
	Path() string
	isRoute()
}

// MainRoute is the searchable list screen. It has no parameters.
type MainRoute struct{}

func (MainRoute) Kind() Kind   { return KindMain }
func (MainRoute) Path() string { return mainPath }
func (MainRoute) isRoute()     {}

// DetailRoute shows a single name. An empty Name means the parameter is absent.
type DetailRoute struct {
	Name string
}

func (DetailRoute) Kind() Kind { return KindDetail }

// Path joins the name as a raw path segment. No escaping is performed,
// so a name containing "/" produces a path with extra segments.
func (r DetailRoute) Path() string {
	return detailPrefix + "/" + r.Name
}

func (DetailRoute) isRoute() {}

// Arg returns the name parameter and whether it is present.
func (r DetailRoute) Arg() (string, bool) {
	return r.Name, r.Name != ""
}

// ParseRoute decodes a path produced by Route.Path.
//
// A detail path without a name segment decodes to a DetailRoute with an
// absent name rather than an error; the detail screen renders nothing for it.
func ParseRoute(path string) (Route, error) {
	switch {
	case path == mainPath:
		return MainRoute{}, nil
	case path == detailPrefix:
		return DetailRoute{}, nil
	case strings.HasPrefix(path, detailPrefix+"/"):
		return DetailRoute{Name: strings.TrimPrefix(path, detailPrefix+"/")}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
}
