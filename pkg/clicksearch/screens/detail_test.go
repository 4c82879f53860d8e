package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
)

func TestDetailController_Render(t *testing.T) {
	var c DetailController

	assert.Equal(t, DetailView{Name: "Peter"}, c.Render(router.DetailRoute{Name: "Peter"}))
	assert.Equal(t, DetailView{Name: "  spaced "}, c.Render(router.DetailRoute{Name: "  spaced "}))
	assert.Equal(t, DetailView{Empty: true}, c.Render(router.DetailRoute{}))
	assert.Equal(t, DetailView{Empty: true}, c.Render(router.MainRoute{}))
}

func TestDetailController_RenderPath(t *testing.T) {
	var c DetailController

	assert.Equal(t, DetailView{Name: "Camela"}, c.RenderPath("details/Camela"))
	assert.Equal(t, DetailView{Empty: true}, c.RenderPath("details/"))
	assert.Equal(t, DetailView{Empty: true}, c.RenderPath("details"))
	assert.Equal(t, DetailView{Empty: true}, c.RenderPath("bogus"))
}
