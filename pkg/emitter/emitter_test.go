package emitter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/a11ykit/pkg/emitter"
)

func TestEmitter_OnEmit(t *testing.T) {
	t.Parallel()

	t.Run("single handler receives value", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[int]()
		var got []int
		tok := em.On(func(v int) { got = append(got, v) })
		require.NotZero(t, tok)

		em.Emit(1)
		em.Emit(2)

		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("handlers run in subscription order", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[string]()
		var order []string
		em.On(func(string) { order = append(order, "first") })
		em.On(func(string) { order = append(order, "second") })
		em.On(func(string) { order = append(order, "third") })

		em.Emit("x")

		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("nil handler yields zero token", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[int]()
		assert.Zero(t, em.On(nil))
		assert.Zero(t, em.Len())
	})

	t.Run("same function registered twice fires twice", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[int]()
		count := 0
		fn := func(int) { count++ }
		em.On(fn)
		em.On(fn)

		em.Emit(0)

		assert.Equal(t, 2, count)
	})
}

func TestEmitter_Off(t *testing.T) {
	t.Parallel()

	t.Run("removed handler is not called again", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[int]()
		count := 0
		tok := em.On(func(int) { count++ })

		em.Emit(1)
		em.Off(tok)
		em.Emit(2)

		assert.Equal(t, 1, count)
	})

	t.Run("removes exactly the identified subscription", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[int]()
		count := 0
		fn := func(int) { count++ }
		first := em.On(fn)
		em.On(fn)

		em.Off(first)
		em.Emit(0)

		assert.Equal(t, 1, count)
		assert.Equal(t, 1, em.Len())
	})

	t.Run("unknown and zero tokens are ignored", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[int]()
		em.On(func(int) {})

		em.Off(0)
		em.Off(emitter.Token(42))

		assert.Equal(t, 1, em.Len())
	})

	t.Run("off during emit affects later emissions only", func(t *testing.T) {
		t.Parallel()

		em := emitter.New[int]()
		var tok emitter.Token
		calls := 0
		tok = em.On(func(int) {
			calls++
			em.Off(tok)
		})

		em.Emit(1)
		em.Emit(2)

		assert.Equal(t, 1, calls)
	})
}

func TestEmitter_Close(t *testing.T) {
	t.Parallel()

	em := emitter.New[int]()
	count := 0
	em.On(func(int) { count++ })

	em.Close()
	em.Emit(1)

	assert.Zero(t, count)
	assert.Zero(t, em.Len())
	assert.Zero(t, em.On(func(int) {}))

	// Close is idempotent.
	em.Close()
}

func TestEmitter_Concurrency(t *testing.T) {
	t.Parallel()

	em := emitter.New[int]()
	var mu sync.Mutex
	total := 0
	em.On(func(v int) {
		mu.Lock()
		total += v
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			em.Emit(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, total)
}
