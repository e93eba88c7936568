package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/eventpanel/internal/catalog"
)

func TestContentPersonalitiesFixedOrder(t *testing.T) {
	cat := catalog.PersonalitiesCategory{Sections: catalog.Sections{
		Speakers:   []catalog.Person{{Name: "C", Image: "c.png"}},
		Performers: []catalog.Person{{Name: "A", Image: "a.png"}, {Name: "B", Image: "b.png"}},
		Guests:     []catalog.Person{},
	}}

	d := Content(cat)
	g, ok := d.(Groups)
	require.True(t, ok)
	require.Len(t, g, 3)

	require.Equal(t, "performers", g[0].Section)
	require.Equal(t, "Performers", g[0].Label)
	require.Equal(t, []Member{{Name: "A", Image: "a.png"}, {Name: "B", Image: "b.png"}}, g[0].Members)

	require.Equal(t, "Guests", g[1].Label)
	require.Empty(t, g[1].Members)

	require.Equal(t, "Speakers", g[2].Label)
	require.Equal(t, []string{"C"}, g[2].Names())
}

func TestContentPersonalitiesAbsentSections(t *testing.T) {
	g := Content(catalog.PersonalitiesCategory{}).(Groups)
	require.Len(t, g, 3)
	for _, grp := range g {
		require.NotNil(t, grp.Members)
		require.Empty(t, grp.Members)
	}
}

func TestContentItemsFlatGrid(t *testing.T) {
	cat := catalog.ItemsCategory{Items: []catalog.Item{{Name: "Stage setup"}, {Name: "Sound check"}}}
	d := Content(cat)
	g, ok := d.(Grid)
	require.True(t, ok, "items render as a grid, not groups")
	require.Equal(t, Grid{{Name: "Stage setup"}, {Name: "Sound check"}}, g)
	require.Equal(t, []string{"Stage setup", "Sound check"}, g.Names())
}

func TestContentEmptyItems(t *testing.T) {
	g := Content(catalog.ItemsCategory{}).(Grid)
	require.NotNil(t, g)
	require.Empty(t, g)
}

func TestContentPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { Content(nil) })
}

func TestRows(t *testing.T) {
	require.Equal(t, [][]string{{"a", "b", "c"}, {"d"}}, Rows([]string{"a", "b", "c", "d"}, 3))
	require.Equal(t, [][]string{{"a"}, {"b"}}, Rows([]string{"a", "b"}, 0))
	require.Nil(t, Rows(nil, 3))
}

func TestColumns(t *testing.T) {
	require.Equal(t, 2, Columns(40))
	require.Equal(t, 3, Columns(120))
	require.Equal(t, 3, Columns(0))
}
