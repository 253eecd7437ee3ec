package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Hello World":                     "hello-world",
		"  Mastering JS Debugging 2025! ": "mastering-js-debugging-2025",
		"UI/UX -- Design":                 "uiux-design",
		"Node.js & APIs":                  "nodejs-apis",
		"---":                             "",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), in)
	}
}

func TestCleanTitleKeepsCasing(t *testing.T) {
	t.Parallel()

	require.Equal(t, "MongoDB Tips for MERN Devs", CleanTitle("  MongoDB Tips   for MERN Devs "))
}

func TestTitleFromSlug(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Mern Stack Guide", TitleFromSlug("mern-stack-guide"))
	require.Equal(t, "Scaling Node 2025", TitleFromSlug("scaling--node-2025"))
}
