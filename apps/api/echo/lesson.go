package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/lesson"
)

func (s *server) registerLessonAPI(g *echo.Group, jwt, optionalJWT echo.MiddlewareFunc) {
	lg := g.Group("/lessons")
	lg.GET("", s.queryCourses)
	lg.GET("/progress", s.lessonProgress, jwt)
	lg.GET("/:course", s.retrieveCourse)
	lg.GET("/:course/:lesson", s.retrieveLesson, optionalJWT)
	lg.POST("/:course/:lesson/grade", s.gradeLesson, optionalJWT)
}

// quizQuestionView hides the answer key.
type quizQuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type lessonView struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Scripture  string             `json:"scripture"`
	Narrative  string             `json:"narrative"`
	Reflection string             `json:"reflection"`
	Quiz       []quizQuestionView `json:"quiz"`
	PassMark   int                `json:"pass_mark"`
	Completed  bool               `json:"completed"`
}

func newLessonView(l lesson.Lesson, completed bool) lessonView {
	quiz := make([]quizQuestionView, 0, len(l.Quiz))
	for _, q := range l.Quiz {
		quiz = append(quiz, quizQuestionView{Question: q.Question, Options: q.Options})
	}
	return lessonView{
		ID:         l.ID,
		Title:      l.Title,
		Scripture:  l.Scripture,
		Narrative:  l.Narrative,
		Reflection: l.Reflection,
		Quiz:       quiz,
		PassMark:   lesson.PassMark,
		Completed:  completed,
	}
}

func (s *server) queryCourses(ctx echo.Context) error {
	courses, err := s.LessonSvc.Courses(ctx.Request().Context())
	return list(s, ctx, "courses", courses, err)
}

func (s *server) retrieveCourse(ctx echo.Context) error {
	c, err := s.LessonSvc.Course(ctx.Request().Context(), ctx.Param("course"))
	if err != nil {
		return errors.Wrap(err, "getting course")
	}
	return ctx.JSON(http.StatusOK, c.Summary())
}

func (s *server) retrieveLesson(ctx echo.Context) error {
	courseID, lessonID := ctx.Param("course"), ctx.Param("lesson")
	l, err := s.LessonSvc.Lesson(ctx.Request().Context(), courseID, lessonID)
	if err != nil {
		return errors.Wrap(err, "getting lesson")
	}
	completed := false
	if vid := contextVisitorID(ctx); vid != "" {
		res, ok := s.LessonSvc.Progress(vid)[courseID+"/"+lessonID]
		completed = ok && res.Passed
	}
	return ctx.JSON(http.StatusOK, newLessonView(l, completed))
}

func (s *server) gradeLesson(ctx echo.Context) error {
	var data lesson.Answers
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Answers")
	}
	res, err := s.LessonSvc.Grade(
		ctx.Request().Context(), contextVisitorID(ctx), ctx.Param("course"), ctx.Param("lesson"), data,
	)
	if err != nil {
		return errors.Wrap(err, "grading lesson")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (s *server) lessonProgress(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.LessonSvc.Progress(contextVisitorID(ctx)))
}
