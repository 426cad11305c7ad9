package container

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntArrayList(t *testing.T, values ...int) *ArrayList[int] {
	t.Helper()
	l, err := NewArrayList[int]()
	require.NoError(t, err)
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func TestArrayListNew(t *testing.T) {
	l, err := NewArrayList[int]()
	require.NoError(t, err)
	assert.Equal(t, defaultCapacity, l.Capacity())
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Size())

	l, err = NewArrayList[int](WithCapacity(3))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Capacity())

	_, err = NewArrayList[int](WithCapacity(-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestArrayListAppendGet(t *testing.T) {
	l := newIntArrayList(t)
	const n = 25
	for i := 0; i < n; i++ {
		l.Append(i * 10)
	}
	require.Equal(t, n, l.Size())
	for k := 0; k < n; k++ {
		v, err := l.Get(k)
		require.NoError(t, err)
		assert.Equal(t, k*10, v)
	}
}

func TestArrayListZeroCapacityGrow(t *testing.T) {
	l, err := NewArrayList[string](WithCapacity(0))
	require.NoError(t, err)
	require.Equal(t, 0, l.Capacity())

	l.Append("a")
	assert.Equal(t, 1, l.Size())
	assert.Equal(t, 1, l.Capacity())

	l.Append("b")
	l.Append("c")
	assert.Equal(t, 4, l.Capacity())
	assert.Equal(t, []string{"a", "b", "c"}, l.Value())
}

func TestArrayListGrowLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l, err := NewArrayList[int](WithCapacity(1), WithLogger(logger))
	require.NoError(t, err)

	l.Append(1)
	assert.Empty(t, buf.String())
	l.Append(2)
	assert.Contains(t, buf.String(), "[ArrayList] grow")
	assert.Contains(t, buf.String(), "newCapacity=2")
}

func TestArrayListInsertScenario(t *testing.T) {
	l := newIntArrayList(t, 1, 2, 3)
	require.NoError(t, l.Insert(1, 9))
	assert.Equal(t, []int{1, 9, 2, 3}, l.Value())
	assert.Equal(t, 4, l.Size())

	v, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{9, 2, 3}, l.Value())
}

func TestArrayListInsert(t *testing.T) {
	l := newIntArrayList(t, 1, 2)
	require.NoError(t, l.Insert(2, 3))
	require.NoError(t, l.Insert(0, 0))
	assert.Equal(t, []int{0, 1, 2, 3}, l.Value())

	for _, index := range []int{-1, 5} {
		err := l.Insert(index, 7)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfBounds))
	}
	assert.Equal(t, []int{0, 1, 2, 3}, l.Value())
}

func TestArrayListInsertAtFullCapacity(t *testing.T) {
	l, err := NewArrayList[int](WithCapacity(2))
	require.NoError(t, err)
	l.Append(1)
	l.Append(3)
	require.NoError(t, l.Insert(1, 2))
	assert.Equal(t, []int{1, 2, 3}, l.Value())
	assert.Equal(t, 4, l.Capacity())
}

func TestArrayListInsertRemoveRoundTrip(t *testing.T) {
	for i := 0; i <= 4; i++ {
		l := newIntArrayList(t, 5, 6, 7, 8)
		before := l.Value()
		require.NoError(t, l.Insert(i, 42))
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, len(before)+1, l.Size())

		removed, err := l.RemoveAt(i)
		require.NoError(t, err)
		assert.Equal(t, 42, removed)
		assert.Equal(t, before, l.Value())
	}
}

func TestArrayListRemoveAtFull(t *testing.T) {
	l, err := NewArrayList[int](WithCapacity(3))
	require.NoError(t, err)
	l.Append(1)
	l.Append(2)
	l.Append(3)

	v, err := l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2}, l.Value())
	// 空出来的槽位被清零
	assert.Equal(t, []int{2, 0, 0}, l.data)
}

func TestArrayListRemoveValue(t *testing.T) {
	l := newIntArrayList(t, 1, 2, 3, 2, 1)
	assert.True(t, l.Remove(2))
	assert.Equal(t, []int{1, 3, 2, 1}, l.Value())
	assert.False(t, l.Remove(9))
	assert.Equal(t, 4, l.Size())
}

func TestArrayListRemoveNil(t *testing.T) {
	a, b := "a", "b"
	l, err := NewArrayList[*string]()
	require.NoError(t, err)
	l.Append(&a)
	l.Append(nil)
	l.Append(&b)

	assert.True(t, l.Remove(nil))
	assert.Equal(t, []*string{&a, &b}, l.Value())
	assert.False(t, l.Remove(nil))
}

func TestArrayListSetGet(t *testing.T) {
	l := newIntArrayList(t, 1, 2, 3)
	for i := 0; i < l.Size(); i++ {
		before, err := l.Get(i)
		require.NoError(t, err)
		old, err := l.Set(i, 100+i)
		require.NoError(t, err)
		assert.Equal(t, before, old)
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, 100+i, got)
	}
}

func TestArrayListBounds(t *testing.T) {
	l := newIntArrayList(t, 1, 2, 3)
	for _, index := range []int{-1, l.Size()} {
		_, err := l.Get(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfBounds), "get %d", index)
		_, err = l.Set(index, 0)
		assert.True(t, errors.Is(err, ErrIndexOutOfBounds), "set %d", index)
		_, err = l.RemoveAt(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfBounds), "removeAt %d", index)
	}
	assert.Equal(t, []int{1, 2, 3}, l.Value())

	_, err := l.Get(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index: 7, size: 3")
}

func TestArrayListSubList(t *testing.T) {
	l := newIntArrayList(t, 0, 1, 2, 3, 4)

	sub, err := l.SubList(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, sub.Value())

	sub, err = l.SubList(2, 2)
	require.NoError(t, err)
	assert.True(t, sub.Empty())

	// 子列表独立于原列表
	sub, err = l.SubList(0, 2)
	require.NoError(t, err)
	_, err = sub.Set(0, 99)
	require.NoError(t, err)
	v, _ := l.Get(0)
	assert.Equal(t, 0, v)

	testCases := []struct {
		start, end int
		want       error
	}{
		{-1, 2, ErrIndexOutOfBounds},
		{5, 4, ErrIndexOutOfBounds},
		{0, 5, ErrIndexOutOfBounds},
		{0, -1, ErrIndexOutOfBounds},
		{3, 1, ErrInvalidArgument},
	}
	for _, tc := range testCases {
		_, err := l.SubList(tc.start, tc.end)
		assert.True(t, errors.Is(err, tc.want), "SubList(%d, %d) = %v", tc.start, tc.end, err)
	}
}

func TestArrayListString(t *testing.T) {
	l := newIntArrayList(t)
	assert.Equal(t, "ArrayList: ", l.String())
	l.Append(1)
	l.Append(2)
	l.Append(3)
	assert.Equal(t, "ArrayList: 1 2 3", l.String())
}

func TestArrayListClearIter(t *testing.T) {
	l := newIntArrayList(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, slices.Collect(l.Iter()))

	var firstTwo []int
	for v := range l.Iter() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal(t, []int{1, 2}, firstTwo)

	l.Clear()
	assert.True(t, l.Empty())
	assert.Equal(t, defaultCapacity, l.Capacity())
	assert.Empty(t, l.Value())
}
