package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	serr "peruse/internal/errors"
	"peruse/internal/page"
)

func TestRecomputeInvariants(t *testing.T) {
	// totalPages = max(1, ceil(entryCount/pageSize)) and currentPage
	// lands in [1, totalPages] for every combination.
	sizes := []int{1, 3, 7, 20, 100}
	for entryCount := 0; entryCount <= 250; entryCount += 13 {
		for _, size := range sizes {
			for _, current := range []int{0, 1, 2, 5, 1000} {
				ps := page.Recompute(entryCount, size, current)

				wantTotal := (entryCount + size - 1) / size
				if wantTotal < 1 {
					wantTotal = 1
				}
				assert.Equal(t, wantTotal, ps.TotalPages,
					"entryCount=%d size=%d", entryCount, size)
				assert.GreaterOrEqual(t, ps.CurrentPage, 1)
				assert.LessOrEqual(t, ps.CurrentPage, ps.TotalPages)
			}
		}
	}
}

func TestRecomputeScenarios(t *testing.T) {
	t.Run("overshoot_clamps", func(t *testing.T) {
		ps := page.Recompute(45, 20, 4)
		assert.Equal(t, 3, ps.TotalPages)
		assert.Equal(t, 3, ps.CurrentPage)
	})

	t.Run("empty_listing", func(t *testing.T) {
		ps := page.Recompute(0, 20, 1)
		assert.Equal(t, 1, ps.TotalPages)
		assert.Equal(t, 1, ps.CurrentPage)

		start, end := page.Window(ps, 0)
		assert.Equal(t, start, end, "empty page body")
	})

	t.Run("undershoot_corrects", func(t *testing.T) {
		ps := page.Recompute(10, 5, 0)
		assert.Equal(t, 1, ps.CurrentPage)
	})

	t.Run("exact_multiple", func(t *testing.T) {
		ps := page.Recompute(40, 20, 2)
		assert.Equal(t, 2, ps.TotalPages)
		assert.Equal(t, 2, ps.CurrentPage)
	})
}

func TestWindow(t *testing.T) {
	ps := page.Recompute(45, 20, 3)
	start, end := page.Window(ps, 45)
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)

	ps = page.Recompute(45, 20, 1)
	start, end = page.Window(ps, 45)
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, page.CheckSize(1))
	assert.NoError(t, page.CheckSize(100))
	assert.NoError(t, page.CheckSize(20))

	for _, n := range []int{0, -1, 101, 1000} {
		err := page.CheckSize(n)
		assert.Error(t, err, "size=%d", n)
		assert.True(t, serr.IsInvalidInput(err))
	}
}
