package collections

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/fun/testt"
)

func checkValues[T comparable](t *testing.T, want, got []T) {
	t.Helper()
	testt.Log(t, "want", want, "got", got)
	check.True(t, slices.Equal(want, got))
}

func TestSinglyLinkedList(t *testing.T) {
	t.Run("PushAndReverse", func(t *testing.T) {
		l := NewSinglyLinkedList[int]()
		l.Push(1).Push(2).Push(3)

		check.Equal(t, "[1 2 3]", l.String())
		l.Reverse()
		check.Equal(t, "[3 2 1]", l.String())
		front, _ := l.Front()
		back, _ := l.Back()
		check.Equal(t, 3, front)
		check.Equal(t, 1, back)
	})

	t.Run("ReverseTwiceRestores", func(t *testing.T) {
		l := NewSinglyLinkedList[string]()
		for _, s := range []string{"a", "b", "c", "d"} {
			l.Push(s)
		}
		l.Reverse().Reverse()
		checkValues(t, []string{"a", "b", "c", "d"}, l.Values())

		// the tail must still be usable after reversal
		l.Push("e")
		checkValues(t, []string{"a", "b", "c", "d", "e"}, l.Values())
	})

	t.Run("ReverseEmpty", func(t *testing.T) {
		l := NewSinglyLinkedList[int]()
		assert.NotPanic(t, func() { l.Reverse() })
		check.Equal(t, 0, l.Len())
	})

	t.Run("EmptyRemovals", func(t *testing.T) {
		var l SinglyLinkedList[int]
		for range 3 {
			_, ok := l.Pop()
			check.True(t, !ok)
			_, ok = l.Shift()
			check.True(t, !ok)
		}
		check.Equal(t, 0, l.Len())
		_, ok := l.Front()
		check.True(t, !ok)
		_, ok = l.Back()
		check.True(t, !ok)
	})

	t.Run("PopUntilEmpty", func(t *testing.T) {
		l := NewSinglyLinkedList[int]().Push(1).Push(2)

		v, ok := l.Pop()
		check.True(t, ok)
		check.Equal(t, 2, v)
		back, _ := l.Back()
		check.Equal(t, 1, back)

		v, ok = l.Pop()
		check.True(t, ok)
		check.Equal(t, 1, v)
		check.Equal(t, 0, l.Len())
		_, ok = l.Back()
		check.True(t, !ok)

		l.Push(9)
		checkValues(t, []int{9}, l.Values())
	})

	t.Run("ShiftUntilEmpty", func(t *testing.T) {
		l := NewSinglyLinkedList[int]().Push(1).Push(2)

		v, _ := l.Shift()
		check.Equal(t, 1, v)
		v, _ = l.Shift()
		check.Equal(t, 2, v)
		_, ok := l.Back()
		check.True(t, !ok)

		l.Unshift(5).Push(6)
		checkValues(t, []int{5, 6}, l.Values())
	})

	t.Run("GetBounds", func(t *testing.T) {
		l := NewSinglyLinkedList[int]().Push(10).Push(20).Push(30)

		v, ok := l.Get(0)
		check.True(t, ok)
		check.Equal(t, 10, v)
		v, ok = l.Get(2)
		check.True(t, ok)
		check.Equal(t, 30, v)

		for _, i := range []int{-1, 3, 4} {
			_, ok = l.Get(i)
			check.True(t, !ok)
		}
	})

	t.Run("Set", func(t *testing.T) {
		l := NewSinglyLinkedList[int]().Push(1).Push(2)

		check.True(t, l.Set(1, 20))
		check.True(t, !l.Set(2, 30))
		check.True(t, !l.Set(-1, 30))
		checkValues(t, []int{1, 20}, l.Values())
	})

	t.Run("Insert", func(t *testing.T) {
		l := NewSinglyLinkedList[int]()

		check.True(t, l.Insert(0, 2))
		check.True(t, l.Insert(0, 0))
		check.True(t, l.Insert(1, 1))
		check.True(t, l.Insert(l.Len(), 3))
		checkValues(t, []int{0, 1, 2, 3}, l.Values())

		check.True(t, !l.Insert(-1, 9))
		check.True(t, !l.Insert(5, 9))
		check.Equal(t, 4, l.Len())
		back, _ := l.Back()
		check.Equal(t, 3, back)
	})

	t.Run("Remove", func(t *testing.T) {
		l := NewSinglyLinkedList[int]().Push(0).Push(1).Push(2).Push(3).Push(4)

		_, ok := l.Remove(l.Len())
		check.True(t, !ok)
		_, ok = l.Remove(-1)
		check.True(t, !ok)
		check.Equal(t, 5, l.Len())

		v, ok := l.Remove(2)
		check.True(t, ok)
		check.Equal(t, 2, v)
		v, _ = l.Remove(0)
		check.Equal(t, 0, v)
		v, _ = l.Remove(l.Len() - 1)
		check.Equal(t, 4, v)
		checkValues(t, []int{1, 3}, l.Values())

		l.Push(5)
		checkValues(t, []int{1, 3, 5}, l.Values())
	})

	t.Run("LengthTracksOperations", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		l := NewSinglyLinkedList[int]()
		model := []int{}

		for i := range 2000 {
			switch rng.IntN(6) {
			case 0:
				l.Push(i)
				model = append(model, i)
			case 1:
				l.Unshift(i)
				model = append([]int{i}, model...)
			case 2:
				v, ok := l.Pop()
				check.Equal(t, len(model) > 0, ok)
				if ok {
					check.Equal(t, model[len(model)-1], v)
					model = model[:len(model)-1]
				}
			case 3:
				v, ok := l.Shift()
				check.Equal(t, len(model) > 0, ok)
				if ok {
					check.Equal(t, model[0], v)
					model = model[1:]
				}
			case 4:
				idx := rng.IntN(len(model) + 2)
				ok := l.Insert(idx, i)
				check.Equal(t, idx <= len(model), ok)
				if ok {
					model = slices.Insert(model, idx, i)
				}
			case 5:
				idx := rng.IntN(len(model) + 1)
				v, ok := l.Remove(idx)
				check.Equal(t, idx < len(model), ok)
				if ok {
					check.Equal(t, model[idx], v)
					model = slices.Delete(model, idx, idx+1)
				}
			}
			assert.Equal(t, len(model), l.Len())
		}
		checkValues(t, model, l.Values())
	})
}
