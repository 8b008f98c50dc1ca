package script

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableDenseIntegerKeysBecomeArray(t *testing.T) {
	v := FromPairs([]Pair{
		{Key: "2", Val: String("b")},
		{Key: "1", Val: String("a")},
		{Key: "3", Val: String("c")},
	})
	require.Equal(t, KindArray, v.Kind())
	require.Equal(t, []Value{String("a"), String("b"), String("c")}, v.Elems())
}

func TestTableGapDemotesToMap(t *testing.T) {
	v := FromPairs([]Pair{
		{Key: "1", Val: String("a")},
		{Key: "3", Val: String("c")},
	})
	require.Equal(t, KindMap, v.Kind())
}

func TestTableNonIntegerKeyDemotesToMap(t *testing.T) {
	v := FromPairs([]Pair{
		{Key: "1", Val: String("a")},
		{Key: "two", Val: String("b")},
	})
	require.Equal(t, KindMap, v.Kind())
}

func TestTableZeroIndexDemotesToMap(t *testing.T) {
	v := FromPairs([]Pair{
		{Key: "0", Val: String("a")},
		{Key: "1", Val: String("b")},
	})
	require.Equal(t, KindMap, v.Kind())
}

func TestTableDuplicateIndexDemotesToMap(t *testing.T) {
	v := FromPairs([]Pair{
		{Key: "1", Val: String("a")},
		{Key: "1", Val: String("b")},
	})
	require.Equal(t, KindMap, v.Kind())
}

func TestEmptyTableIsMap(t *testing.T) {
	require.Equal(t, KindMap, FromPairs(nil).Kind())
}
