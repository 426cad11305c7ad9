package scenario

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	KindArray  = "array"
	KindLinked = "linked"
)

// 操作类型
const (
	OpAppend   = "append"
	OpInsert   = "insert"
	OpRemoveAt = "removeAt"
	OpRemove   = "remove"
	OpGet      = "get"
	OpSet      = "set"
	OpSubList  = "subList"
	OpSize     = "size"
	OpEmpty    = "empty"
	OpString   = "string"
)

// 期望的错误类型
const (
	ExpectOutOfBounds     = "outOfBounds"
	ExpectInvalidArgument = "invalidArgument"
)

// Scenario 一组针对同一个容器的操作
type Scenario struct {
	Name     string `yaml:"name,omitempty"`
	Kind     string `yaml:"kind"`
	Capacity *int   `yaml:"capacity,omitempty"` // 只对 array 生效
	Steps    []Step `yaml:"steps"`
}

// Step 单步操作
type Step struct {
	Op          string  `yaml:"op"`
	Index       int     `yaml:"index,omitempty"`
	Value       string  `yaml:"value,omitempty"`
	Start       int     `yaml:"start,omitempty"`
	End         int     `yaml:"end,omitempty"`
	Expect      *string `yaml:"expect,omitempty"`
	ExpectError string  `yaml:"expectError,omitempty"`
}

// Parse 解析 YAML
func Parse(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode scenario")
	}
	if s.Kind == "" {
		s.Kind = KindArray
	}
	return &s, nil
}

// Load 从文件加载
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open scenario %s", path)
	}
	defer f.Close()

	return Parse(f)
}
