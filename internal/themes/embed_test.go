package themes

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFS_ContainsThemeFiles(t *testing.T) {
	entries, err := fs.ReadDir(FS(), Dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		require.False(t, e.IsDir())
		require.True(t, strings.HasSuffix(e.Name(), ".yaml"), e.Name())
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"ember-studio.yaml", "meadow.yaml", "nordic-frost.yaml"}, names)
}
