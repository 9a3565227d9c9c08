package boxname_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/boxkit/pkg/boxname"
)

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, boxname.CPP, boxname.ParseLanguage("c++"))
	assert.Equal(t, boxname.Java, boxname.ParseLanguage("java"))
	assert.Equal(t, boxname.Python, boxname.ParseLanguage("python"))
	assert.Equal(t, boxname.Invalid, boxname.ParseLanguage("cpp"))
	assert.Equal(t, boxname.Invalid, boxname.ParseLanguage(""))
}

func TestLanguage_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "C++", boxname.CPP.String())
	assert.Equal(t, "Java", boxname.Java.String())
	assert.Equal(t, "Python", boxname.Python.String())
	assert.Equal(t, "Invalid", boxname.Invalid.String())
	assert.Equal(t, "Invalid", boxname.Language(42).String())
}

func TestLanguage_CanBeMain(t *testing.T) {
	t.Parallel()

	assert.True(t, boxname.CPP.CanBeMain())
	assert.True(t, boxname.Java.CanBeMain())
	assert.False(t, boxname.Python.CanBeMain())
	assert.False(t, boxname.Invalid.CanBeMain())
}

func TestParseContent(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]boxname.Content{
		"code":   boxname.Code,
		"input":  boxname.Input,
		"output": boxname.Output,
	} {
		got, err := boxname.ParseContent(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, strings.ToLower(got.String()))
	}

	_, err := boxname.ParseContent("Output")
	require.ErrorIs(t, err, boxname.ErrInvalidContent)
	assert.Equal(t, "Content(9)", boxname.Content(9).String())
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "c++ main", boxname.BaseName(boxname.CPP, true))
	assert.Equal(t, "c++", boxname.BaseName(boxname.CPP, false))
	assert.Equal(t, "java main", boxname.BaseName(boxname.Java, true))
	assert.Equal(t, "python", boxname.BaseName(boxname.Python, true))
}

func TestSequence(t *testing.T) {
	t.Parallel()

	seq := boxname.NewSequence(5)
	assert.Equal(t, 5, seq.Peek())
	assert.Equal(t, 5, seq.Next())
	assert.Equal(t, 6, seq.Next())
	assert.Equal(t, 7, seq.Peek())
}

func TestSequence_Concurrent(t *testing.T) {
	t.Parallel()

	seq := boxname.NewSequence(0)
	const workers, perWorker = 8, 100

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := make(map[int]bool)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := seq.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, workers*perWorker, seq.Peek())
}
