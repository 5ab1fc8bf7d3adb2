package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	t.Run("appends new categories in observed order", func(t *testing.T) {
		order, changed := Reconcile([]string{"Cintas LED"}, []string{"Cintas LED", "Perfiles", "Balas"})

		assert.True(t, changed)
		assert.Equal(t, []string{"Cintas LED", "Perfiles", "Balas"}, order)
	})

	t.Run("removes stale categories and keeps relative order", func(t *testing.T) {
		order, changed := Reconcile([]string{"A", "B", "C", "D"}, []string{"D", "B"})

		assert.True(t, changed)
		assert.Equal(t, []string{"B", "D"}, order)
	})

	t.Run("idempotent once converged", func(t *testing.T) {
		first, changed := Reconcile([]string{"B"}, []string{"A", "B"})
		require.True(t, changed)

		second, changed := Reconcile(first, []string{"A", "B"})
		assert.False(t, changed)
		assert.Equal(t, first, second)
	})

	t.Run("result is exactly the observed set with no duplicates", func(t *testing.T) {
		order, _ := Reconcile([]string{"X", "A", "X"}, []string{"A", "B"})

		assert.ElementsMatch(t, []string{"A", "B"}, order)
	})

	t.Run("empty inputs yield empty order", func(t *testing.T) {
		order, changed := Reconcile(nil, nil)

		assert.False(t, changed)
		assert.Empty(t, order)
	})

	t.Run("does not mutate the input order", func(t *testing.T) {
		input := []string{"A", "B", "C"}
		_, _ = Reconcile(input, []string{"C"})

		assert.Equal(t, []string{"A", "B", "C"}, input)
	})
}

func TestMoveAdjacent(t *testing.T) {
	order := []string{"A", "B", "C"}

	t.Run("moves a category up", func(t *testing.T) {
		moved, changed := MoveAdjacent(order, "B", -1)

		assert.True(t, changed)
		assert.Equal(t, []string{"B", "A", "C"}, moved)
		assert.Equal(t, []string{"A", "B", "C"}, order) // input untouched
	})

	t.Run("moves a category down", func(t *testing.T) {
		moved, changed := MoveAdjacent(order, "B", 1)

		assert.True(t, changed)
		assert.Equal(t, []string{"A", "C", "B"}, moved)
	})

	t.Run("first entry cannot move up", func(t *testing.T) {
		moved, changed := MoveAdjacent(order, "A", -1)

		assert.False(t, changed)
		assert.Equal(t, order, moved)
	})

	t.Run("last entry cannot move down", func(t *testing.T) {
		moved, changed := MoveAdjacent(order, "C", 1)

		assert.False(t, changed)
		assert.Equal(t, order, moved)
	})

	t.Run("unknown category is a no-op", func(t *testing.T) {
		_, changed := MoveAdjacent(order, "Z", 1)

		assert.False(t, changed)
	})

	t.Run("invalid direction is a no-op", func(t *testing.T) {
		_, changed := MoveAdjacent(order, "B", 2)

		assert.False(t, changed)
	})
}

func TestAppendIfAbsent(t *testing.T) {
	t.Run("appends a new category at the end", func(t *testing.T) {
		order, changed := AppendIfAbsent([]string{"A", "B"}, "C")

		assert.True(t, changed)
		assert.Equal(t, []string{"A", "B", "C"}, order)
	})

	t.Run("existing category is unchanged", func(t *testing.T) {
		order, changed := AppendIfAbsent([]string{"A", "B"}, "A")

		assert.False(t, changed)
		assert.Equal(t, []string{"A", "B"}, order)
	})
}
