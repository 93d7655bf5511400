package bundle

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfs "github.com/FidelisKagashe26/godcares/fs"
)

func TestLessonRepository_Bundled(t *testing.T) {
	courses, err := NewLessonRepository(appfs.FS).QueryCourses(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, courses)

	for _, c := range courses {
		assert.NotEmpty(t, c.ID)
		for _, l := range c.Lessons {
			assert.NotEmpty(t, l.Quiz, "lesson %s/%s has no quiz", c.ID, l.ID)
			for i, q := range l.Quiz {
				assert.True(t, q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options),
					"%s/%s question %d: answer out of range", c.ID, l.ID, i)
			}
		}
	}
}

func TestLessonRepository_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{name: "missing file", fsys: fstest.MapFS{}},
		{name: "bad json", fsys: fstest.MapFS{coursesFile: {Data: []byte(`{"id":`)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLessonRepository(tt.fsys).QueryCourses(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestLessonRepository_ReturnsCopies(t *testing.T) {
	fsys := fstest.MapFS{coursesFile: {Data: []byte(`[{"id": "a", "title": "A"}, {"id": "b", "title": "B"}]`)}}
	repo := NewLessonRepository(fsys)

	first, err := repo.QueryCourses(context.Background())
	require.NoError(t, err)
	first[0].Title = "changed"

	second, _ := repo.QueryCourses(context.Background())
	assert.Equal(t, "A", second[0].Title)
}
