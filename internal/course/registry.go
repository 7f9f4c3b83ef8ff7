package course

// Section number bounds. Every number in FirstSection..LastSection has a
// registry entry.
const (
	FirstSection = 1
	LastSection  = 12
	SectionCount = LastSection - FirstSection + 1
)

// SectionInfo describes one course section.
type SectionInfo struct {
	Number     int        `json:"sectionNumber"`
	Title      string     `json:"title"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// sections is indexed by Number-FirstSection. The array length pins the
// table to exactly SectionCount entries at compile time.
var sections = [SectionCount]SectionInfo{
	{1, "Introduction to the Nvidia GPUs hardware", CategoryGPUHardware, DifficultyBeginner},
	{2, "Installing CUDA and other programs", CategorySetup, DifficultyBeginner},
	{3, "Introduction to CUDA programming", CategoryCUDABasics, DifficultyBeginner},
	{4, "Profiling", CategoryProfiling, DifficultyIntermediate},
	{5, "Performance analysis for the previous applications", CategoryPerformance, DifficultyIntermediate},
	{6, "2D Indexing", CategoryIndexing, DifficultyIntermediate},
	{7, "Shared Memory + Warp Divergence", CategoryMemoryOptimization, DifficultyAdvanced},
	{8, "Debugging tools", CategoryDebugging, DifficultyIntermediate},
	{9, "Vector Reduction", CategoryAlgorithms, DifficultyAdvanced},
	{10, "Roofline model", CategoryPerformance, DifficultyAdvanced},
	{11, "Matrix Multiplication (Bonus)", CategoryAlgorithms, DifficultyAdvanced},
	{12, "Profiling - nsight systems", CategoryProfiling, DifficultyIntermediate},
}

// InRange reports whether n is a valid section number.
func InRange(n int) bool {
	return n >= FirstSection && n <= LastSection
}

// Section returns the registry entry for section n.
func Section(n int) (SectionInfo, error) {
	if !InRange(n) {
		return SectionInfo{}, &OutOfRangeError{Number: n}
	}
	return sections[n-FirstSection], nil
}

// Sections returns every section in number order. The slice is a copy.
func Sections() []SectionInfo {
	out := make([]SectionInfo, SectionCount)
	copy(out, sections[:])
	return out
}

// TitleOf returns the title of section n.
func TitleOf(n int) (string, error) {
	s, err := Section(n)
	if err != nil {
		return "", err
	}
	return s.Title, nil
}

// CategoryOf returns the category of section n.
func CategoryOf(n int) (Category, error) {
	s, err := Section(n)
	if err != nil {
		return "", err
	}
	return s.Category, nil
}

// DifficultyOf returns the default lecture difficulty of section n.
func DifficultyOf(n int) (Difficulty, error) {
	s, err := Section(n)
	if err != nil {
		return "", err
	}
	return s.Difficulty, nil
}
