package screens

import "github.com/anunobi/clicksearch/pkg/clicksearch/router"

// DetailView is what the detail screen displays.
type DetailView struct {
	Name  string
	Empty bool // no name to show; render the placeholder
}

// DetailController turns a route into a DetailView. It holds no state.
type DetailController struct{}

// Render echoes the route's name. An absent name, or a route that is not a
// detail route, yields the empty view.
func (DetailController) Render(route router.Route) DetailView {
	detail, ok := route.(router.DetailRoute)
	if !ok {
		return DetailView{Empty: true}
	}
	name, ok := detail.Arg()
	if !ok {
		return DetailView{Empty: true}
	}
	return DetailView{Name: name}
}

// RenderPath decodes path at the navigation boundary and renders it.
// Paths that do not decode render the empty view.
func (c DetailController) RenderPath(path string) DetailView {
	route, err := router.ParseRoute(path)
	if err != nil {
		return DetailView{Empty: true}
	}
	return c.Render(route)
}
