// Package bundle reads the content shipped inside the binary.
package bundle

import (
	"context"
	"encoding/json"
	"io/fs"
	"sync"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/lesson"
)

const coursesFile = "content/lessons.json"

type lessonRepository struct {
	fsys fs.FS

	once    sync.Once
	courses []lesson.Course
	err     error
}

// NewLessonRepository serves the courses in content/lessons.json of fsys, parsed once.
func NewLessonRepository(fsys fs.FS) lesson.Repository {
	return &lessonRepository{fsys: fsys}
}

func (repo *lessonRepository) load() {
	data, err := fs.ReadFile(repo.fsys, coursesFile)
	if err != nil {
		repo.err = errors.Wrap(err, "reading courses")
		return
	}
	var courses []lesson.Course
	if err = json.Unmarshal(data, &courses); err != nil {
		repo.err = errors.Wrap(err, "decoding courses")
		return
	}
	repo.courses = courses
}

func (repo *lessonRepository) QueryCourses(_ context.Context) ([]lesson.Course, error) {
	repo.once.Do(repo.load)
	if repo.err != nil {
		return nil, repo.err
	}
	out := make([]lesson.Course, len(repo.courses))
	copy(out, repo.courses)
	return out, nil
}
