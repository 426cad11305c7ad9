package container

import "fmt"

// Node 链表节点句柄 只引用槽位 不持有数据
// 节点被移除后句柄失效 继续使用结果未定义
type Node[T comparable] struct {
	list  *LinkedList[T]
	index int
}

// Valid 是否为有效句柄
func (n Node[T]) Valid() bool {
	return n.list != nil && n.index != nilIndex
}

// Value 节点数据
func (n Node[T]) Value() T {
	return n.list.slots[n.index].value
}

// SetValue 修改节点数据 返回旧值
func (n Node[T]) SetValue(val T) (old T) {
	s := &n.list.slots[n.index]
	old, s.value = s.value, val
	return old
}

// Next 下一个节点 到达尾部返回 false
func (n Node[T]) Next() (Node[T], bool) {
	return n.list.node(n.list.slots[n.index].next)
}

// Prev 上一个节点 到达头部返回 false
func (n Node[T]) Prev() (Node[T], bool) {
	return n.list.node(n.list.slots[n.index].prev)
}

func (n Node[T]) String() string {
	if !n.Valid() {
		return "Node{}"
	}
	return fmt.Sprintf("Node{data=%v}", n.Value())
}
