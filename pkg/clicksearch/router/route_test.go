package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"main", MainRoute{}},
		{"details/Peter", DetailRoute{Name: "Peter"}},
		{"details/", DetailRoute{}},
		{"details", DetailRoute{}},
		{"details/a/b", DetailRoute{Name: "a/b"}},
		{"details/Freeman Jr", DetailRoute{Name: "Freeman Jr"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseRoute(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoute_Unknown(t *testing.T) {
	for _, path := range []string{"", "settings", "mainx", "detailsX"} {
		_, err := ParseRoute(path)
		assert.ErrorIs(t, err, ErrUnknownRoute, path)
	}
}

func TestRoutePathRoundTrip(t *testing.T) {
	for _, r := range []Route{MainRoute{}, DetailRoute{Name: "Kennedy"}, DetailRoute{Name: "x/y"}} {
		got, err := ParseRoute(r.Path())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestDetailRouteArg(t *testing.T) {
	name, ok := DetailRoute{Name: "Anita"}.Arg()
	assert.True(t, ok)
	assert.Equal(t, "Anita", name)

	_, ok = DetailRoute{}.Arg()
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "main", KindMain.Pattern())
	assert.Equal(t, "details/{name}", KindDetail.Pattern())
	assert.Equal(t, "", KindNone.Pattern())
	assert.Equal(t, []Kind{KindMain, KindDetail}, Kinds())
	assert.Equal(t, "detail", KindDetail.String())
}
