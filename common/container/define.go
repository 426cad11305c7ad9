package container

import (
	"log/slog"

	"go_lists/common/options"
)

const (
	// 默认初始容量
	defaultCapacity = 10
)

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

var (
	// 断言 检查实现 Container
	_ Container[int] = (*ArrayList[int])(nil)
	_ Container[int] = (*LinkedList[int])(nil)
)

// ListOptions 列表配置
type ListOptions struct {
	Capacity int          // 初始容量
	Logger   *slog.Logger // 日志 默认 slog.Default()
}

// WithCapacity 指定初始容量
func WithCapacity(capacity int) options.Option[ListOptions] {
	return options.WrapperOptions[ListOptions](func(o *ListOptions) {
		o.Capacity = capacity
	})
}

// WithLogger 指定日志
func WithLogger(logger *slog.Logger) options.Option[ListOptions] {
	return options.WrapperOptions[ListOptions](func(o *ListOptions) {
		o.Logger = logger
	})
}

// newListOptions 默认配置 + 自定义配置
func newListOptions(opts ...options.Option[ListOptions]) *ListOptions {
	o := options.ApplyAll(&ListOptions{Capacity: defaultCapacity}, opts...)
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
