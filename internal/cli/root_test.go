package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Commands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"get", "post", "put", "delete"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	for _, name := range []string{"data", "form", "file", "empty"} {
		post, _, _ := cmd.Find([]string{"post"})
		assert.NotNil(t, post.Flags().Lookup(name), "post is missing --%s", name)
	}

	get, _, _ := cmd.Find([]string{"get"})
	assert.Nil(t, get.Flags().Lookup("data"))
}

func TestNewRootCmd_Help(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "fetcher")
	assert.Contains(t, out.String(), "form-data")
}

func TestNewRootCmd_TooManyArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"post", "http://a", "b"})

	assert.Error(t, cmd.Execute())
}
