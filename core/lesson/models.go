package lesson

import "math"

// PassMark is the minimum score, in percent, that passes a quiz.
const PassMark = 70

type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type Lesson struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Scripture  string         `json:"scripture"`
	Narrative  string         `json:"narrative"`
	Reflection string         `json:"reflection"`
	Quiz       []QuizQuestion `json:"quiz"`
}

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

// Summary is a course without its lesson bodies, for listings.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LessonCount int    `json:"lesson_count"`
}

func (c Course) Summary() Summary {
	return Summary{ID: c.ID, Title: c.Title, Description: c.Description, LessonCount: len(c.Lessons)}
}

func (c Course) Lesson(id string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// Answers holds the chosen option index per question. A missing or negative index is unanswered.
type Answers struct {
	Choices []int `json:"answers" validate:"required,max=100"`
}

type Result struct {
	Total   int  `json:"total"`
	Correct int  `json:"correct"`
	Score   int  `json:"score"`
	Passed  bool `json:"passed"`
}

// Grade scores answers against quiz: score = round(100*correct/total), passed = score >= PassMark.
// Unanswered questions count as wrong; an empty quiz scores 0 and does not pass.
func Grade(quiz []QuizQuestion, answers []int) Result {
	res := Result{Total: len(quiz)}
	if res.Total == 0 {
		return res
	}
	for i, q := range quiz {
		if i < len(answers) && answers[i] >= 0 && answers[i] == q.CorrectIndex {
			res.Correct++
		}
	}
	res.Score = Score(res.Correct, res.Total)
	res.Passed = res.Score >= PassMark
	return res
}

func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
