// Package lesson serves the bundled Bible courses and grades their quizzes.
package lesson

import (
	"context"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
)

type (
	Repository interface {
		QueryCourses(ctx context.Context) ([]Course, error)
	}

	Service interface {
		Courses(ctx context.Context) ([]Summary, error)
		Course(ctx context.Context, id string) (Course, error)
		Lesson(ctx context.Context, courseID, lessonID string) (Lesson, error)
		// Grade scores the answers and, for a known visitor, records the result.
		Grade(ctx context.Context, visitorID, courseID, lessonID string, a Answers) (Result, error)
		Progress(visitorID string) map[string]Result
	}

	service struct {
		repo     Repository
		progress *Progress
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, progress *Progress) Service {
	return &service{repo: repo, progress: progress}
}

func (svc *service) Courses(ctx context.Context) ([]Summary, error) {
	courses, err := svc.repo.QueryCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	out := make([]Summary, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Summary())
	}
	return out, nil
}

func (svc *service) Course(ctx context.Context, id string) (Course, error) {
	courses, err := svc.repo.QueryCourses(ctx)
	if err != nil {
		return Course{}, errors.Wrap(err, "querying courses")
	}
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, core.ErrNotFound
}

func (svc *service) Lesson(ctx context.Context, courseID, lessonID string) (Lesson, error) {
	c, err := svc.Course(ctx, courseID)
	if err != nil {
		return Lesson{}, err
	}
	l, ok := c.Lesson(lessonID)
	if !ok {
		return Lesson{}, core.ErrNotFound
	}
	return l, nil
}

func (svc *service) Grade(ctx context.Context, visitorID, courseID, lessonID string, a Answers) (Result, error) {
	if err := core.Validate.Struct(a); err != nil {
		return Result{}, err
	}
	l, err := svc.Lesson(ctx, courseID, lessonID)
	if err != nil {
		return Result{}, err
	}
	res := Grade(l.Quiz, a.Choices)
	if visitorID != "" {
		svc.progress.Record(visitorID, courseID, lessonID, res)
	}
	return res, nil
}

func (svc *service) Progress(visitorID string) map[string]Result {
	return svc.progress.Snapshot(visitorID)
}
