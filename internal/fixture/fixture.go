// Package fixture builds deterministic sample rosters for tests and
// the menu's seed action. Same seed, same roster.
package fixture

import (
	"math/rand"

	"gradebook/internal/model"
)

var (
	studentNames = []string{"Alice", "Bob", "Charlie", "David", "Eva", "Frank", "Grace", "Hannah"}
	subjectNames = []string{"Math", "English", "Science", "History", "Art"}
)

type Builder struct {
	rng *rand.Rand
}

func NewBuilder(seed int64) *Builder {
	return &Builder{rng: rand.New(rand.NewSource(seed))}
}

// Students returns a roster where every sample student has between two
// and five subjects with grades in 50..100.
func (b *Builder) Students() model.Roster {
	roster := make(model.Roster, len(studentNames))
	for _, name := range studentNames {
		count := 2 + b.rng.Intn(len(subjectNames)-1)
		picked := b.rng.Perm(len(subjectNames))[:count]

		grades := make(model.Grades, count)
		for _, idx := range picked {
			grades[subjectNames[idx]] = float64(50 + b.rng.Intn(51))
		}
		roster[name] = grades
	}
	return roster
}
