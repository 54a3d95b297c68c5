package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	cmd := RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--lang", "fr", "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "0 home [Accueil]")
	assert.Contains(t, out.String(), "foo has parent: false")
}

func TestRunCommandRejectsBadLanguage(t *testing.T) {
	cmd := RootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--lang", "??"})

	assert.Error(t, cmd.Execute())
}

func TestRunCommandMissingCatalog(t *testing.T) {
	cmd := RootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--catalog", "does-not-exist.toml"})

	assert.Error(t, cmd.Execute())
}

func TestSDLCommandIsRegistered(t *testing.T) {
	cmd, _, err := RootCommand().Find([]string{"sdl"})
	require.NoError(t, err)
	assert.Equal(t, "sdl", cmd.Name())

	resizable, err := cmd.Flags().GetBool("resizable")
	require.NoError(t, err)
	assert.True(t, resizable)
	assert.NotNil(t, cmd.Flags().Lookup("width"))
}
