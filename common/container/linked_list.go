package container

import (
	"fmt"
	"iter"
	"strings"
)

const (
	headIndex = 0  // 头哨兵槽位
	tailIndex = 1  // 尾哨兵槽位
	nilIndex  = -1 // 空链接
)

// slot 链表节点槽位 next/prev 只是下标 不持有节点
type slot[T any] struct {
	value T
	next  int
	prev  int
}

// LinkedList 双向链表 线程不安全
// 节点存放在 slots 中 0/1 两个槽位永远是头尾哨兵 不存数据
type LinkedList[T comparable] struct {
	slots []slot[T]
	free  []int // 回收的槽位
	size  int
}

// NewLinkedList 创建双向链表
func NewLinkedList[T comparable]() *LinkedList[T] {
	l := &LinkedList[T]{}
	l.reset()
	return l
}

func (l *LinkedList[T]) reset() {
	l.slots = []slot[T]{
		headIndex: {next: tailIndex, prev: nilIndex},
		tailIndex: {next: nilIndex, prev: headIndex},
	}
	l.free = nil
	l.size = 0
}

// Empty 是否为空
func (l *LinkedList[T]) Empty() bool {
	return l.slots[headIndex].next == tailIndex
}

// Size 元素个数
func (l *LinkedList[T]) Size() int {
	return l.size
}

// Clear 清空 释放所有槽位
func (l *LinkedList[T]) Clear() {
	l.reset()
}

// Value 按顺序获取所有元素
func (l *LinkedList[T]) Value() []T {
	values := make([]T, 0, l.size)
	for cur := l.slots[headIndex].next; cur != tailIndex; cur = l.slots[cur].next {
		values = append(values, l.slots[cur].value)
	}
	return values
}

// Head 第一个节点 空链表返回 false
func (l *LinkedList[T]) Head() (Node[T], bool) {
	return l.node(l.slots[headIndex].next)
}

// Tail 最后一个节点 空链表返回 false
func (l *LinkedList[T]) Tail() (Node[T], bool) {
	return l.node(l.slots[tailIndex].prev)
}

// Append 追加到末尾
func (l *LinkedList[T]) Append(val T) {
	l.linkBefore(tailIndex, val)
}

// Insert 插入到 index 位置 index 可以等于 Size
func (l *LinkedList[T]) Insert(index int, val T) error {
	if err := checkPositionIndex(index, l.size); err != nil {
		return err
	}
	// index == size 时 nodeAt 会落在尾哨兵上
	l.linkBefore(l.nodeAt(index), val)
	return nil
}

// Remove 移除第一个等于 val 的元素
func (l *LinkedList[T]) Remove(val T) bool {
	for cur := l.slots[headIndex].next; cur != tailIndex; cur = l.slots[cur].next {
		if l.slots[cur].value == val {
			l.unlink(cur)
			return true
		}
	}
	return false
}

// RemoveAt 移除 index 位置的元素并返回
func (l *LinkedList[T]) RemoveAt(index int) (val T, err error) {
	if err = checkElementIndex(index, l.size); err != nil {
		return
	}
	return l.unlink(l.nodeAt(index)), nil
}

// Get 获取 index 位置的元素
func (l *LinkedList[T]) Get(index int) (val T, err error) {
	if err = checkElementIndex(index, l.size); err != nil {
		return
	}
	return l.slots[l.nodeAt(index)].value, nil
}

// Set 替换 index 位置的元素 返回旧值
func (l *LinkedList[T]) Set(index int, val T) (old T, err error) {
	if err = checkElementIndex(index, l.size); err != nil {
		return
	}
	s := &l.slots[l.nodeAt(index)]
	old, s.value = s.value, val
	return old, nil
}

// SubList 拷贝 [start, end) 到新的链表
// 与 ArrayList.SubList 一致 end 必须小于 Size 遍历到 end 就停止 end 位置的元素不会被访问
func (l *LinkedList[T]) SubList(start, end int) (*LinkedList[T], error) {
	if err := checkSubListRange(start, end, l.size); err != nil {
		return nil, err
	}
	sub := NewLinkedList[T]()
	cur := l.slots[headIndex].next
	for i := 0; i < end; i++ {
		if i >= start {
			sub.Append(l.slots[cur].value)
		}
		cur = l.slots[cur].next
	}
	return sub, nil
}

// Iterator 创建游标迭代器
func (l *LinkedList[T]) Iterator() *Iterator[T] {
	return NewIterator(l)
}

// Iter 迭代器
func (l *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.slots[headIndex].next; cur != tailIndex; cur = l.slots[cur].next {
			if !yield(l.slots[cur].value) {
				return
			}
		}
	}
}

// String 格式 "LinkedList: e0 e1 e2 " 每个元素后面都跟一个空格
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("LinkedList: ")
	for cur := l.slots[headIndex].next; cur != tailIndex; cur = l.slots[cur].next {
		fmt.Fprint(&sb, l.slots[cur].value)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// nodeAt 定位 index 位置的槽位 调用方保证 0 <= index <= size
// 后半段从尾部往前找 结果与从头找一致
func (l *LinkedList[T]) nodeAt(index int) int {
	if index > l.size/2 {
		cur := tailIndex
		for i := l.size; i > index; i-- {
			cur = l.slots[cur].prev
		}
		return cur
	}
	cur := l.slots[headIndex].next
	for i := 0; i < index; i++ {
		cur = l.slots[cur].next
	}
	return cur
}

// alloc 分配槽位 优先复用
func (l *LinkedList[T]) alloc(val T) int {
	if n := len(l.free); n > 0 {
		idx := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[idx] = slot[T]{value: val, next: nilIndex, prev: nilIndex}
		return idx
	}
	l.slots = append(l.slots, slot[T]{value: val, next: nilIndex, prev: nilIndex})
	return len(l.slots) - 1
}

// linkBefore 在 at 之前插入新节点
func (l *LinkedList[T]) linkBefore(at int, val T) {
	idx := l.alloc(val)
	prev := l.slots[at].prev
	l.slots[idx].prev = prev
	l.slots[idx].next = at
	l.slots[prev].next = idx
	l.slots[at].prev = idx
	l.size++
}

// unlink 摘除节点 槽位回收
func (l *LinkedList[T]) unlink(idx int) T {
	s := l.slots[idx]
	l.slots[s.prev].next = s.next
	l.slots[s.next].prev = s.prev
	l.slots[idx] = slot[T]{next: nilIndex, prev: nilIndex}
	l.free = append(l.free, idx)
	l.size--
	return s.value
}

// node 槽位转节点句柄 哨兵不对外暴露
func (l *LinkedList[T]) node(idx int) (Node[T], bool) {
	if idx == headIndex || idx == tailIndex || idx == nilIndex {
		return Node[T]{}, false
	}
	return Node[T]{list: l, index: idx}, true
}
