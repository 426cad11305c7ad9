package container

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"

	"go_lists/common/options"
)

// ArrayList 动态数组 线程不安全
type ArrayList[T comparable] struct {
	// len(data) 即容量 只有 [0, size) 是有效数据
	data     []T
	size     int
	capacity int // 初始容量 Clear 时恢复
	logger   *slog.Logger
}

// NewArrayList 创建动态数组 默认容量 10
func NewArrayList[T comparable](opts ...options.Option[ListOptions]) (*ArrayList[T], error) {
	o := newListOptions(opts...)
	if o.Capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity must not be less than 0, got %d", o.Capacity)
	}
	return &ArrayList[T]{
		data:     make([]T, o.Capacity),
		capacity: o.Capacity,
		logger:   o.Logger,
	}, nil
}

// Empty 是否为空
func (l *ArrayList[T]) Empty() bool {
	return l.size == 0
}

// Size 元素个数
func (l *ArrayList[T]) Size() int {
	return l.size
}

// Capacity 当前容量
func (l *ArrayList[T]) Capacity() int {
	return len(l.data)
}

// Clear 清空 恢复初始容量
func (l *ArrayList[T]) Clear() {
	l.data = make([]T, l.capacity)
	l.size = 0
}

// Value 获取有效数据的拷贝
func (l *ArrayList[T]) Value() []T {
	values := make([]T, l.size)
	copy(values, l.data[:l.size])
	return values
}

// Append 追加到末尾
func (l *ArrayList[T]) Append(val T) {
	l.grow(l.size + 1)
	l.data[l.size] = val
	l.size++
}

// Insert 插入到 index 位置 index 可以等于 Size
func (l *ArrayList[T]) Insert(index int, val T) error {
	if err := checkPositionIndex(index, l.size); err != nil {
		return err
	}
	l.grow(l.size + 1)
	// 从后往前移 避免覆盖
	for i := l.size; i > index; i-- {
		l.data[i] = l.data[i-1]
	}
	l.data[index] = val
	l.size++
	return nil
}

// RemoveAt 移除 index 位置的元素并返回
func (l *ArrayList[T]) RemoveAt(index int) (val T, err error) {
	if err = checkElementIndex(index, l.size); err != nil {
		return
	}
	val = l.data[index]
	copy(l.data[index:l.size], l.data[index+1:l.size])
	l.size--
	// 清理空出来的槽位
	var zero T
	l.data[l.size] = zero
	return val, nil
}

// Remove 移除第一个等于 val 的元素
func (l *ArrayList[T]) Remove(val T) bool {
	for i := 0; i < l.size; i++ {
		if l.data[i] == val {
			_, _ = l.RemoveAt(i)
			return true
		}
	}
	return false
}

// Get 获取 index 位置的元素
func (l *ArrayList[T]) Get(index int) (val T, err error) {
	if err = checkElementIndex(index, l.size); err != nil {
		return
	}
	return l.data[index], nil
}

// Set 替换 index 位置的元素 返回旧值
func (l *ArrayList[T]) Set(index int, val T) (old T, err error) {
	if err = checkElementIndex(index, l.size); err != nil {
		return
	}
	old = l.data[index]
	l.data[index] = val
	return old, nil
}

// SubList 拷贝 [start, end) 到新的列表
// 注意 end 必须小于 Size 所以最后一个元素永远取不到
func (l *ArrayList[T]) SubList(start, end int) (*ArrayList[T], error) {
	if err := checkSubListRange(start, end, l.size); err != nil {
		return nil, err
	}
	sub, err := NewArrayList[T](WithLogger(l.logger))
	if err != nil {
		return nil, err
	}
	for i := start; i < end; i++ {
		sub.Append(l.data[i])
	}
	return sub, nil
}

// Iter 迭代器
func (l *ArrayList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(l.data[i]) {
				return
			}
		}
	}
}

// String 格式 "ArrayList: e0 e1 e2"
func (l *ArrayList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("ArrayList: ")
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, l.data[i])
	}
	return sb.String()
}

// 扩容 新容量取 max(2 倍, minCapacity) 容量为 0 时直接取 minCapacity
func (l *ArrayList[T]) grow(minCapacity int) {
	oldCapacity := len(l.data)
	if minCapacity <= oldCapacity {
		return
	}
	newCapacity := oldCapacity * 2
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	newData := make([]T, newCapacity)
	copy(newData, l.data[:l.size])
	l.data = newData
	l.logger.Debug("[ArrayList] grow", slog.Int("oldCapacity", oldCapacity), slog.Int("newCapacity", newCapacity), slog.Int("size", l.size))
}
