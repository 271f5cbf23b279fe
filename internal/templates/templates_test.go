package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestList(t *testing.T) {
	assert.Equal(t, []string{"full", "minimal"}, List())
}

func TestGet(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			tpl, err := Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, tpl.Name)
			assert.NotEmpty(t, tpl.Description)
			assert.NotEmpty(t, tpl.Content)
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("enterprise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template 'enterprise' not found")
	assert.Contains(t, err.Error(), "full, minimal")
}

func TestTemplatesAreValidManifests(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			tpl, err := Get(name)
			require.NoError(t, err)

			var doc map[string]interface{}
			require.NoError(t, yaml.Unmarshal(tpl.Content, &doc))
			assert.Equal(t, 1, doc["version"])
			assert.Contains(t, doc, "links")
		})
	}
}
