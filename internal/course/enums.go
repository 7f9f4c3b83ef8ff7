// Package course holds the static model of the CUDA course: the ordered
// category and difficulty enumerations and the section registry. Both the
// registry and the front matter schema in internal/content derive their
// allowed values from the enumerations declared here.
package course

import (
	"fmt"
	"strings"
)

// Category tags a section (and each lecture) with a topic area.
type Category string

const (
	CategoryGPUHardware        Category = "gpu-hardware"
	CategorySetup              Category = "setup"
	CategoryCUDABasics         Category = "cuda-basics"
	CategoryProfiling          Category = "profiling"
	CategoryPerformance        Category = "performance"
	CategoryIndexing           Category = "indexing"
	CategoryMemoryOptimization Category = "memory-optimization"
	CategoryDebugging          Category = "debugging"
	CategoryAlgorithms         Category = "algorithms"
)

// categories is the canonical ordered category set.
var categories = []Category{
	CategoryGPUHardware,
	CategorySetup,
	CategoryCUDABasics,
	CategoryProfiling,
	CategoryPerformance,
	CategoryIndexing,
	CategoryMemoryOptimization,
	CategoryDebugging,
	CategoryAlgorithms,
}

// DefaultCategory is applied to entries that omit a category.
const DefaultCategory = CategoryGPUHardware

// Categories returns the ordered category set. The slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryNames returns the category set as plain strings, in order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}

// Valid reports whether c is a member of the category set.
// Matching is exact: no case folding, no trimming.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts s to a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q (valid: %s)", s, strings.Join(CategoryNames(), ", "))
	}
	return c, nil
}

// Difficulty is the expected level of a lecture.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// DefaultDifficulty is applied to entries that omit a difficulty.
const DefaultDifficulty = DifficultyBeginner

// Difficulties returns the ordered difficulty set. The slice is a copy.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// DifficultyNames returns the difficulty set as plain strings, in order.
func DifficultyNames() []string {
	names := make([]string, len(difficulties))
	for i, d := range difficulties {
		names[i] = string(d)
	}
	return names
}

// Valid reports whether d is a member of the difficulty set.
func (d Difficulty) Valid() bool {
	for _, known := range difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDifficulty converts s to a Difficulty, rejecting unknown values.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("invalid difficulty %q (valid: %s)", s, strings.Join(DifficultyNames(), ", "))
	}
	return d, nil
}
