package prerequisites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("finds present tool", func(t *testing.T) {
		t.Parallel()
		// sh is present on any POSIX host running the tests.
		results := Check([]Tool{{Name: "sh", Required: true}})

		require.Len(t, results.Results, 1)
		assert.True(t, results.Results[0].Found)
		assert.NotEmpty(t, results.Results[0].Path)
		assert.Empty(t, results.Missing)
		require.NoError(t, results.Err())
	})

	t.Run("reports missing required tool", func(t *testing.T) {
		t.Parallel()
		results := Check([]Tool{{
			Name:       "definitely-not-a-real-binary",
			Required:   true,
			InstallURL: "https://example.com/install",
		}})

		require.Len(t, results.Missing, 1)
		err := results.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "definitely-not-a-real-binary")
		assert.Contains(t, err.Error(), "https://example.com/install")
	})

	t.Run("missing optional tool is not an error", func(t *testing.T) {
		t.Parallel()
		results := Check([]Tool{{Name: "definitely-not-a-real-binary", Required: false}})

		require.Len(t, results.Missing, 1)
		require.NoError(t, results.Err())
	})
}

func TestLoginTools(t *testing.T) {
	t.Parallel()

	tools := LoginTools()
	require.Len(t, tools, 1)
	assert.Equal(t, "ssh", tools[0].Name)
	assert.True(t, tools[0].Required)
}
