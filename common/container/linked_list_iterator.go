package container

// Iterator 链表游标迭代器
// WARN: 遍历过程中链表发生插入/删除 迭代器失效
type Iterator[T comparable] struct {
	list   *LinkedList[T]
	cursor int // 初始位于头哨兵
}

// NewIterator 创建迭代器 第一次 Next 返回第一个元素
func NewIterator[T comparable](list *LinkedList[T]) *Iterator[T] {
	it := &Iterator[T]{list: list, cursor: nilIndex}
	if list != nil {
		it.cursor = headIndex
	}
	return it
}

// HasNext 是否还有下一个元素 尾哨兵不算
func (it *Iterator[T]) HasNext() bool {
	if it.cursor == nilIndex {
		return false
	}
	next := it.list.slots[it.cursor].next
	return next != nilIndex && next != tailIndex
}

// Next 前进一步并返回当前节点
func (it *Iterator[T]) Next() (Node[T], bool) {
	if !it.HasNext() {
		return Node[T]{index: nilIndex}, false
	}
	it.cursor = it.list.slots[it.cursor].next
	return Node[T]{list: it.list, index: it.cursor}, true
}
