// Package course_test tests the section registry lookups and range errors.
// Related: internal/course/registry.go
// Tags: course, registry, sections, property
package course

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSections_CoverEveryNumberOnce(t *testing.T) {
	t.Parallel()

	all := Sections()
	require.Len(t, all, SectionCount)
	for i, s := range all {
		assert.Equal(t, FirstSection+i, s.Number, "sections must be ordered by number")
		assert.NotEmpty(t, s.Title)
		assert.True(t, s.Category.Valid(), "section %d category %q", s.Number, s.Category)
		assert.True(t, s.Difficulty.Valid(), "section %d difficulty %q", s.Number, s.Difficulty)
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	t.Parallel()

	all := Sections()
	all[0].Title = "mutated"

	title, err := TitleOf(1)
	require.NoError(t, err)
	assert.Equal(t, "Introduction to the Nvidia GPUs hardware", title)
}

func TestLookups_KnownValues(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		number     int
		title      string
		category   Category
		difficulty Difficulty
	}{
		"first section": {
			number:     1,
			title:      "Introduction to the Nvidia GPUs hardware",
			category:   CategoryGPUHardware,
			difficulty: DifficultyBeginner,
		},
		"shared memory": {
			number:     7,
			title:      "Shared Memory + Warp Divergence",
			category:   CategoryMemoryOptimization,
			difficulty: DifficultyAdvanced,
		},
		"vector reduction uses algorithms": {
			number:     9,
			title:      "Vector Reduction",
			category:   CategoryAlgorithms,
			difficulty: DifficultyAdvanced,
		},
		"last section": {
			number:     12,
			title:      "Profiling - nsight systems",
			category:   CategoryProfiling,
			difficulty: DifficultyIntermediate,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			title, err := TitleOf(tc.number)
			require.NoError(t, err)
			assert.Equal(t, tc.title, title)

			cat, err := CategoryOf(tc.number)
			require.NoError(t, err)
			assert.Equal(t, tc.category, cat)

			diff, err := DifficultyOf(tc.number)
			require.NoError(t, err)
			assert.Equal(t, tc.difficulty, diff)
		})
	}
}

func TestLookups_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, 0, 13, 100} {
		_, err := TitleOf(n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, n, rangeErr.Number)

		_, err = CategoryOf(n)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestLookups_TotalOverRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(FirstSection, LastSection).Draw(t, "n")

		title, err := TitleOf(n)
		if err != nil || title == "" {
			t.Fatalf("TitleOf(%d) = %q, %v", n, title, err)
		}
		cat, err := CategoryOf(n)
		if err != nil || !cat.Valid() {
			t.Fatalf("CategoryOf(%d) = %q, %v", n, cat, err)
		}
	})
}

func TestLookups_FailOutsideRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Filter(func(v int) bool { return !InRange(v) }).Draw(t, "n")

		if _, err := TitleOf(n); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("TitleOf(%d) error = %v, want ErrOutOfRange", n, err)
		}
		if _, err := CategoryOf(n); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("CategoryOf(%d) error = %v, want ErrOutOfRange", n, err)
		}
	})
}
