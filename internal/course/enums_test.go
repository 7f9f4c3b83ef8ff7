package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCategoriesAreSchemaMembers(t *testing.T) {
	t.Parallel()

	for _, s := range Sections() {
		assert.Contains(t, Categories(), s.Category, "section %d", s.Number)
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		wantErr bool
	}{
		"known":          {input: "memory-optimization"},
		"algorithms":     {input: "algorithms"},
		"unknown":        {input: "networking", wantErr: true},
		"case sensitive": {input: "Profiling", wantErr: true},
		"padded":         {input: " setup", wantErr: true},
		"empty":          {input: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := ParseCategory(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid category")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Category(tc.input), c)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	for _, name := range DifficultyNames() {
		d, err := ParseDifficulty(name)
		require.NoError(t, err)
		assert.Equal(t, Difficulty(name), d)
	}

	_, err := ParseDifficulty("expert")
	assert.Error(t, err)
	_, err = ParseDifficulty("BEGINNER")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Difficulty("beginner"), DefaultDifficulty)
	assert.Equal(t, Category("gpu-hardware"), DefaultCategory)
	assert.True(t, DefaultCategory.Valid())
	assert.True(t, DefaultDifficulty.Valid())
}

func TestCategories_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Categories()
	c[0] = "mutated"
	assert.Equal(t, CategoryGPUHardware, Categories()[0])
	assert.Len(t, CategoryNames(), 9)
}
