package cli

import (
	"strings"
	"testing"

	"github.com/openbootdotdev/synap/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findLine(out, prefix string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	return ""
}

func TestPlaceholders_ListsEveryKey(t *testing.T) {
	f := setupCLI(t)

	require.NoError(t, f.run("placeholders"))
	out := f.stdout.String()
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), len(render.Keys()))

	assert.True(t, strings.HasSuffix(findLine(out, "{{hostname}} "), "field"))
	assert.True(t, strings.HasSuffix(findLine(out, "{{bold}} "), "style"))
}

func TestPlaceholders_Values(t *testing.T) {
	f := setupCLI(t)

	require.NoError(t, f.run("placeholders", "--values"))
	out := f.stdout.String()
	assert.True(t, strings.HasSuffix(findLine(out, "{{hostname}} "), "box"))
	assert.True(t, strings.HasSuffix(findLine(out, "{{terminal}} "), "kitty"))
	assert.True(t, strings.HasSuffix(findLine(out, "{{bold}} "), `"\x1b[1m"`))
}

func TestPlaceholders_ValuesNonLinux(t *testing.T) {
	f := setupCLI(t)
	isLinux = func() bool { return false }

	require.NoError(t, f.run("placeholders", "--values"))
	assert.Empty(t, f.stdout.String())
}
