package nav

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestParseMenu(t *testing.T) {
	t.Parallel()
	menu, err := ParseMenu([]byte(`
- path: /
  label: Home
- path: /service
  label: Services
  children:
    - path: /service/web
      label: Web
`))
	require.NoError(t, err)
	require.Len(t, menu, 2)
	require.True(t, menu[1].HasChildren())
	require.Equal(t, "/service/web", menu[1].Children[0].Path)
}

func TestParseMenuRejectsInvalid(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"empty":     `[]`,
		"relative":  "- path: about\n  label: About\n",
		"duplicate": "- path: /a\n  label: A\n- path: /a\n  label: A again\n",
		"too deep": `
- path: /a
  label: A
  children:
    - path: /a/b
      label: B
      children:
        - path: /a/b/c
          label: C
`,
		"not yaml": "- path: [",
	}
	for name, doc := range cases {
		_, err := ParseMenu([]byte(doc))
		require.Error(t, err, name)
	}
}

func TestLoadMenu(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"data/nav.yaml": {Data: []byte("- path: /\n  label: Home\n")},
	}
	menu, err := LoadMenu(fsys, "data/nav.yaml")
	require.NoError(t, err)
	require.Equal(t, Menu{{Path: "/", Label: "Home"}}, menu)

	_, err = LoadMenu(fsys, "data/missing.yaml")
	require.Error(t, err)
}
