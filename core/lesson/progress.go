package lesson

import "sync"

// Progress remembers graded lessons per visitor. It lives in memory only and is lost on restart.
type Progress struct {
	mu   sync.RWMutex
	data map[string]map[string]Result // visitor -> "course/lesson" -> best result
}

func NewProgress() *Progress {
	return &Progress{data: make(map[string]map[string]Result)}
}

func key(courseID, lessonID string) string { return courseID + "/" + lessonID }

// Record keeps the best score for the lesson.
func (p *Progress) Record(visitorID, courseID, lessonID string, res Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	byLesson, ok := p.data[visitorID]
	if !ok {
		byLesson = make(map[string]Result)
		p.data[visitorID] = byLesson
	}
	k := key(courseID, lessonID)
	if prev, ok := byLesson[k]; ok && prev.Score >= res.Score {
		return
	}
	byLesson[k] = res
}

func (p *Progress) Completed(visitorID, courseID, lessonID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	res, ok := p.data[visitorID][key(courseID, lessonID)]
	return ok && res.Passed
}

// Snapshot copies the visitor's results.
func (p *Progress) Snapshot(visitorID string) map[string]Result {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]Result, len(p.data[visitorID]))
	for k, v := range p.data[visitorID] {
		out[k] = v
	}
	return out
}
