package ta

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raykavin/taframe/pkg/core"
)

// requireSeriesEqual compares two series position by position, treating two
// missing values as equal; reflect.DeepEqual (and thus require.Equal) never
// matches the NaN missing-value sentinel against itself
func requireSeriesEqual(t *testing.T, expected, actual series) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		if core.IsMissing(expected[i]) {
			require.True(t, core.IsMissing(actual[i]), "position %d: expected missing, got %v", i, actual[i])
			continue
		}
		require.Equal(t, expected[i], actual[i], "position %d", i)
	}
}
