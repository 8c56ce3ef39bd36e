package menudef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/menutui/internal/action"
)

const demoDef = `
groups:
  - title: navigation
    actions:
      - label: View
        icon: view
        to: /records/view
      - label: Edit
        icon: edit
        to: /records/edit
  - title: commands
    actions:
      - label: Refresh
        icon: refresh
        run: refresh
      - label: Delete
        icon: trash
        run: delete
        disabled: true
`

func TestParse(t *testing.T) {
	refreshed := 0
	reg := Registry{
		"refresh": func() { refreshed++ },
		"delete":  func() {},
	}

	menu, err := Parse([]byte(demoDef), reg)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, "navigation", menu[0].Title)
	require.Len(t, menu[0].Actions, 2)
	require.Len(t, menu[1].Actions, 2)

	view := menu[0].Actions[0]
	assert.Equal(t, "View", view.Label)
	assert.Equal(t, action.KindNavigate, view.Behavior().Kind())
	assert.Equal(t, "/records/view", view.Behavior().Target())

	refresh := menu[1].Actions[0]
	assert.Equal(t, action.KindInvoke, refresh.Behavior().Kind())
	refresh.Behavior().Handler()()
	assert.Equal(t, 1, refreshed, "run names resolve to registry handlers")

	del := menu[1].Actions[1]
	assert.True(t, del.Disabled)
}

func TestParse_BothBehaviors(t *testing.T) {
	def := `
groups:
  - actions:
      - label: Confused
        to: /somewhere
        run: something
`
	_, err := Parse([]byte(def), Registry{"something": func() {}})
	assert.ErrorIs(t, err, action.ErrBothBehaviors)
}

func TestParse_NeitherBehavior(t *testing.T) {
	def := `
groups:
  - actions:
      - label: Inert
        icon: gear
`
	_, err := Parse([]byte(def), nil)
	assert.ErrorIs(t, err, action.ErrNoBehavior)
}

func TestParse_UnknownHandler(t *testing.T) {
	def := `
groups:
  - actions:
      - label: Mystery
        run: nope
`
	_, err := Parse([]byte(def), Registry{"refresh": func() {}})
	assert.ErrorIs(t, err, ErrUnknownHandler)
}

func TestParse_NilHandlerInRegistry(t *testing.T) {
	def := `
groups:
  - actions:
      - label: Broken
        run: broken
`
	_, err := Parse([]byte(def), Registry{"broken": nil})
	assert.ErrorIs(t, err, ErrUnknownHandler)
}

func TestParse_NilRegistryChecksShapeOnly(t *testing.T) {
	menu, err := Parse([]byte(demoDef), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, menu.ActionCount())
}

func TestParse_EmptyLabel(t *testing.T) {
	def := `
groups:
  - actions:
      - to: /x
`
	_, err := Parse([]byte(def), nil)
	assert.ErrorIs(t, err, action.ErrEmptyLabel)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("groups: ["), nil)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoDef), 0644))

	menu, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, menu.ActionCount())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}
