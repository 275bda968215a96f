package vector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected clone failure")

// lifecycleLog records hook activity and can arm a clone failure on the nth
// upcoming clone call.
type lifecycleLog struct {
	clones    int
	moves     int
	destroyed []string

	failOnCall int // 1-based upcoming clone call; 0 disarms
}

func (l *lifecycleLog) failNext(n int) {
	l.clones = 0
	l.failOnCall = n
}

func (l *lifecycleLog) cloneOpt() Option[string] {
	return WithClone[string](func(s string) (string, error) {
		l.clones++
		if l.failOnCall > 0 && l.clones == l.failOnCall {
			return "", errInjected
		}
		return s, nil
	})
}

func (l *lifecycleLog) moveOpt() Option[string] {
	return WithMove[string](func(src *string) string {
		l.moves++
		val := *src
		*src = ""
		return val
	})
}

func (l *lifecycleLog) destroyOpt() Option[string] {
	return WithDestroy[string](func(p *string) {
		if *p != "" {
			l.destroyed = append(l.destroyed, *p)
		}
	})
}

func TestRelocation_MovePreferredOverClone(t *testing.T) {
	log := &lifecycleLog{}
	v := New[string](log.cloneOpt(), log.moveOpt())
	pushAll(t, v, "a", "b", "c", "d") // fills capacity 4 exactly

	log.clones, log.moves = 0, 0
	require.NoError(t, v.PushBack("e"))

	assert.Equal(t, 1, log.clones, "only the appended value is cloned")
	assert.Equal(t, 4, log.moves, "existing elements relocate by move when a move hook exists")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, values(v))
}

func TestRelocation_CopiesWhenOnlyCloneHookExists(t *testing.T) {
	log := &lifecycleLog{}
	v := New[string](log.cloneOpt())
	pushAll(t, v, "a", "b", "c")

	log.clones = 0
	require.NoError(t, v.Reserve(16))

	assert.Equal(t, 3, log.clones, "a failable clone with no move hook forces the copy strategy")
	assert.Equal(t, []string{"a", "b", "c"}, values(v))
	assert.Equal(t, 16, v.Cap())
}

func TestRelocation_MoveHookAloneUsed(t *testing.T) {
	log := &lifecycleLog{}
	v := New[string](log.moveOpt())
	pushAll(t, v, "a", "b")

	log.moves = 0
	require.NoError(t, v.Reserve(8))
	assert.Equal(t, 2, log.moves)
	assert.Equal(t, []string{"a", "b"}, values(v))
}

// TestStrongGuarantee forces a clone failure inside every relocation-based
// operation and checks the container is byte-for-byte what it was before the
// failed call.
func TestStrongGuarantee(t *testing.T) {
	tests := []struct {
		name string
		op   func(v *Vector[string]) error
	}{
		{name: "reserve", op: func(v *Vector[string]) error { return v.Reserve(64) }},
		{name: "resize grow", op: func(v *Vector[string]) error { return v.Resize(64) }},
		{name: "append regrow", op: func(v *Vector[string]) error { return v.PushBack("x") }},
		{name: "positional insert regrow", op: func(v *Vector[string]) error { return v.Insert(2, "x") }},
		{name: "clone", op: func(v *Vector[string]) error { _, err := v.Clone(); return err }},
		{name: "copy assignment regrow", op: func(v *Vector[string]) error {
			dst := New[string]()
			return dst.CopyFrom(v)
		}},
	}

	for _, tt := range tests {
		for _, failOn := range []int{1, 2, 4} {
			t.Run(fmt.Sprintf("%s/fail on clone %d", tt.name, failOn), func(t *testing.T) {
				log := &lifecycleLog{}
				v := New[string](log.cloneOpt())
				require.NoError(t, v.Reserve(4))
				pushAll(t, v, "a", "b", "c", "d") // full: mutation must relocate

				wantValues := values(v)
				wantCap := v.Cap()

				log.failNext(failOn)
				err := tt.op(v)
				log.failOnCall = 0

				require.ErrorIs(t, err, errInjected)
				assert.Equal(t, 4, v.Len())
				assert.Equal(t, wantCap, v.Cap())
				assert.Equal(t, wantValues, values(v))

				// The container stays fully usable.
				require.NoError(t, v.PushBack("e"))
				assert.Equal(t, append(wantValues, "e"), values(v))
			})
		}
	}
}

func TestAllocationBudget(t *testing.T) {
	v := New[int](WithMaxCapacity[int](4))
	for i := 1; i <= 4; i++ {
		require.NoError(t, v.PushBack(i))
	}
	require.Equal(t, 4, v.Cap())

	err := v.PushBack(5)
	require.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, []int{1, 2, 3, 4}, values(v), "failed growth leaves the container unchanged")
	assert.Equal(t, 4, v.Cap())

	assert.ErrorIs(t, v.Reserve(100), ErrAllocation)
	assert.ErrorIs(t, v.Resize(100), ErrAllocation)
	assert.ErrorIs(t, v.Insert(0, 9), ErrAllocation)
	assert.Equal(t, []int{1, 2, 3, 4}, values(v))

	_, err = NewWithSize[int](10, WithMaxCapacity[int](4))
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestConstructionFailureLeavesContainerUnchanged(t *testing.T) {
	v := New[string]()
	pushAll(t, v, "a", "b")

	_, err := v.EmplaceBack(func() (string, error) { return "", errInjected })
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []string{"a", "b"}, values(v))

	_, err = v.Emplace(1, func() (string, error) { return "", errInjected })
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, []string{"a", "b"}, values(v))
}

func TestDestroyHook(t *testing.T) {
	t.Run("pop and erase destroy the removed element", func(t *testing.T) {
		log := &lifecycleLog{}
		v := New[string](log.destroyOpt())
		pushAll(t, v, "a", "b", "c")

		v.Erase(1)
		assert.Equal(t, []string{"b"}, log.destroyed)

		v.PopBack()
		assert.Equal(t, []string{"b", "c"}, log.destroyed)
	})

	t.Run("clear destroys everything", func(t *testing.T) {
		log := &lifecycleLog{}
		v := New[string](log.destroyOpt())
		pushAll(t, v, "a", "b")

		v.Clear()
		assert.ElementsMatch(t, []string{"a", "b"}, log.destroyed)
	})

	t.Run("shrink destroys the tail", func(t *testing.T) {
		log := &lifecycleLog{}
		v := New[string](log.destroyOpt())
		pushAll(t, v, "a", "b", "c", "d")

		require.NoError(t, v.Resize(2))
		assert.Equal(t, []string{"c", "d"}, log.destroyed)
	})

	t.Run("move assignment destroys the old contents", func(t *testing.T) {
		log := &lifecycleLog{}
		dst := New[string](log.destroyOpt())
		pushAll(t, dst, "old1", "old2")
		src := New[string](log.destroyOpt())
		pushAll(t, src, "new1")

		dst.MoveFrom(src)
		assert.Equal(t, []string{"old1", "old2"}, log.destroyed)
		assert.Equal(t, []string{"new1"}, values(dst))
	})
}

func TestCopyFrom_CloneFailureOnTemporaryPath(t *testing.T) {
	log := &lifecycleLog{}
	src := New[string](log.cloneOpt())
	pushAll(t, src, "a", "b", "c")

	dst := New[string]()
	log.failNext(2)
	err := dst.CopyFrom(src)
	log.failOnCall = 0

	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, 0, dst.Len(), "destination untouched when the temporary copy fails")
	assert.Equal(t, []string{"a", "b", "c"}, values(src))
}
