package tools

import (
	"bytes"
	"testing"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteDocs_Modules(t *testing.T) {
	for module := range supportedModules {
		t.Run(module, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, writeDocs(&out, module, false))
			assert.NotEmpty(t, out.String())
		})
	}

	assert.Error(t, writeDocs(&bytes.Buffer{}, "cpu", false))
}

func TestWriteDocs_YamlRoundTrips(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeDocs(&out, "isa", true))

	var summary mc.Summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &summary))

	expected, err := mc.Descriptor.Summary()
	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}
