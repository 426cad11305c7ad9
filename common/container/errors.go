package container

import "github.com/cockroachdb/errors"

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrInvalidArgument  = errors.New("invalid argument")
)

func errOutOfBounds(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index: %d, size: %d", index, size)
}

// checkElementIndex 校验 [0, size)
func checkElementIndex(index, size int) error {
	if index < 0 || index >= size {
		return errOutOfBounds(index, size)
	}
	return nil
}

// checkPositionIndex 校验 [0, size] 插入位置可以等于 size
func checkPositionIndex(index, size int) error {
	if index < 0 || index > size {
		return errOutOfBounds(index, size)
	}
	return nil
}

// checkSubListRange 子列表范围校验
// end 也必须是一个有效元素下标 (end < size) 而不是尾后位置
func checkSubListRange(start, end, size int) error {
	if err := checkElementIndex(start, size); err != nil {
		return err
	}
	if err := checkElementIndex(end, size); err != nil {
		return err
	}
	if start > end {
		return errors.Wrapf(ErrInvalidArgument, "start %d > end %d", start, end)
	}
	return nil
}
