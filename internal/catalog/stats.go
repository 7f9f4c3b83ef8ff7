package catalog

import (
	"fmt"
	"slices"
	"sort"

	"github.com/cudacourse/coursekit/internal/content"
	"github.com/cudacourse/coursekit/internal/course"
)

// QuizTag marks an entry as a quiz when counting quizzes.
const QuizTag = "quiz"

// Totals are the declared course sizes to compare against.
// A zero Quizzes disables the quiz count check.
type Totals struct {
	Sections int
	Lectures int
	Quizzes  int
}

// SectionCount is the number of entries found for one section.
type SectionCount struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Lectures int    `json:"lectures"`
	Quizzes  int    `json:"quizzes"`
}

// Duplicate lists the files sharing one key.
type Duplicate struct {
	Key   string   `json:"key"`
	Paths []string `json:"paths"`
}

// Stats summarises a set of validated lectures.
type Stats struct {
	Sections        []SectionCount `json:"sections"`
	Lectures        int            `json:"lectures"`
	Quizzes         int            `json:"quizzes"`
	DuplicateKeys   []Duplicate    `json:"duplicateKeys,omitempty"`
	DuplicateOrders []Duplicate    `json:"duplicateOrders,omitempty"`
	Mismatches      []string       `json:"mismatches,omitempty"`
}

// Clean reports whether no duplicates or count mismatches were found.
func (s *Stats) Clean() bool {
	return len(s.DuplicateKeys) == 0 && len(s.DuplicateOrders) == 0 && len(s.Mismatches) == 0
}

// ComputeStats counts lectures per section, finds duplicate
// (section, lecture) pairs and duplicate order values, and compares the
// counts with want.
func ComputeStats(lectures []*content.Lecture, want Totals) *Stats {
	stats := &Stats{}
	perSection := make(map[int]*SectionCount)
	for _, info := range course.Sections() {
		sc := &SectionCount{Number: info.Number, Title: info.Title}
		perSection[info.Number] = sc
	}

	byKey := make(map[content.Key][]string)
	byOrder := make(map[int][]string)

	for _, lec := range lectures {
		e := lec.Entry
		sc := perSection[e.SectionNumber]
		if sc == nil {
			sc = &SectionCount{Number: e.SectionNumber, Title: e.SectionTitle}
			perSection[e.SectionNumber] = sc
		}
		if slices.Contains(e.Tags, QuizTag) {
			sc.Quizzes++
			stats.Quizzes++
		} else {
			sc.Lectures++
			stats.Lectures++
		}
		byKey[e.Key()] = append(byKey[e.Key()], lec.Path)
		byOrder[e.Order] = append(byOrder[e.Order], lec.Path)
	}

	for _, sc := range perSection {
		stats.Sections = append(stats.Sections, *sc)
	}
	sort.Slice(stats.Sections, func(i, j int) bool {
		return stats.Sections[i].Number < stats.Sections[j].Number
	})

	for key, paths := range byKey {
		if len(paths) > 1 {
			stats.DuplicateKeys = append(stats.DuplicateKeys, Duplicate{
				Key:   fmt.Sprintf("S%d-L%d", key.Section, key.Lecture),
				Paths: paths,
			})
		}
	}
	for order, paths := range byOrder {
		if len(paths) > 1 {
			stats.DuplicateOrders = append(stats.DuplicateOrders, Duplicate{
				Key:   fmt.Sprintf("order %d", order),
				Paths: paths,
			})
		}
	}
	sortDuplicates(stats.DuplicateKeys)
	sortDuplicates(stats.DuplicateOrders)

	populated := 0
	for _, sc := range stats.Sections {
		if sc.Lectures+sc.Quizzes > 0 {
			populated++
		}
	}
	if want.Sections > 0 && populated != want.Sections {
		stats.Mismatches = append(stats.Mismatches,
			fmt.Sprintf("sections: declared %d, found %d with content", want.Sections, populated))
	}
	if want.Lectures > 0 && stats.Lectures != want.Lectures {
		stats.Mismatches = append(stats.Mismatches,
			fmt.Sprintf("lectures: declared %d, found %d", want.Lectures, stats.Lectures))
	}
	if want.Quizzes > 0 && stats.Quizzes != want.Quizzes {
		stats.Mismatches = append(stats.Mismatches,
			fmt.Sprintf("quizzes: declared %d, found %d", want.Quizzes, stats.Quizzes))
	}

	return stats
}

func sortDuplicates(dups []Duplicate) {
	for _, d := range dups {
		sort.Strings(d.Paths)
	}
	sort.Slice(dups, func(i, j int) bool {
		return dups[i].Paths[0] < dups[j].Paths[0]
	})
}
