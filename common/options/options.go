package options

// Option Options 接口
type Option[T any] interface {
	Apply(t *T)
}

// WrapperOptions 包装Options
type WrapperOptions[T any] func(t *T)

// Apply 实现Options接口
func (opt WrapperOptions[T]) Apply(t *T) {
	opt(t)
}

// ApplyAll 依次应用所有配置项 跳过 nil
func ApplyAll[T any](t *T, opts ...Option[T]) *T {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.Apply(t)
	}
	return t
}
