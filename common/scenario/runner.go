package scenario

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cockroachdb/errors"

	"go_lists/common/container"
	"go_lists/common/options"
)

var (
	ErrUnknownKind       = errors.New("unknown container kind")
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrExpectationFailed = errors.New("expectation failed")
)

// sequence 两种容器的公共操作 元素类型固定为 string
type sequence interface {
	Size() int
	Empty() bool
	Append(val string)
	Insert(index int, val string) error
	RemoveAt(index int) (string, error)
	Remove(val string) bool
	Get(index int) (string, error)
	Set(index int, val string) (string, error)
	String() string
	subList(start, end int) (fmt.Stringer, error)
}

type arraySequence struct {
	*container.ArrayList[string]
}

func (s arraySequence) subList(start, end int) (fmt.Stringer, error) {
	sub, err := s.SubList(start, end)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

type linkedSequence struct {
	*container.LinkedList[string]
}

func (s linkedSequence) subList(start, end int) (fmt.Stringer, error) {
	sub, err := s.SubList(start, end)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// StepResult 单步执行结果
type StepResult struct {
	Step   Step
	Output string
	Err    error // 期望不符时非 nil
}

// Report 执行报告
type Report struct {
	Name     string
	Kind     string
	Steps    []StepResult
	Final    string // 执行完成后容器的文本表示
	Failures int
}

// Failed 是否有步骤不符合期望
func (r *Report) Failed() bool {
	return r.Failures > 0
}

// WriteTo 输出执行过程
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}
	if err := write("scenario %q (%s)\n", r.Name, r.Kind); err != nil {
		return total, err
	}
	for i, res := range r.Steps {
		status := "ok"
		if res.Err != nil {
			status = "FAIL: " + res.Err.Error()
		}
		if err := write("[%d] %s -> %q %s\n", i+1, res.Step.describe(), res.Output, status); err != nil {
			return total, err
		}
	}
	if err := write("%s\n", r.Final); err != nil {
		return total, err
	}
	err := write("%d step(s), %d failure(s)\n", len(r.Steps), r.Failures)
	return total, err
}

func (s Step) describe() string {
	switch s.Op {
	case OpAppend, OpRemove:
		return fmt.Sprintf("%s(%q)", s.Op, s.Value)
	case OpInsert, OpSet:
		return fmt.Sprintf("%s(%d, %q)", s.Op, s.Index, s.Value)
	case OpRemoveAt, OpGet:
		return fmt.Sprintf("%s(%d)", s.Op, s.Index)
	case OpSubList:
		return fmt.Sprintf("%s(%d, %d)", s.Op, s.Start, s.End)
	default:
		return s.Op + "()"
	}
}

// Runner 场景执行器
type Runner struct {
	logger *slog.Logger
}

// RunnerOptions 执行器配置
type RunnerOptions struct {
	Logger *slog.Logger
}

// WithRunnerLogger 指定日志
func WithRunnerLogger(logger *slog.Logger) options.Option[RunnerOptions] {
	return options.WrapperOptions[RunnerOptions](func(o *RunnerOptions) {
		o.Logger = logger
	})
}

// NewRunner 构造函数
func NewRunner(opts ...options.Option[RunnerOptions]) *Runner {
	o := options.ApplyAll(&RunnerOptions{}, opts...)
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return &Runner{logger: o.Logger}
}

// Run 执行场景 只有容器无法创建时返回 error 步骤失败记录在报告里
func (r *Runner) Run(s *Scenario) (*Report, error) {
	seq, err := r.newSequence(s)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Name:  s.Name,
		Kind:  s.Kind,
		Steps: make([]StepResult, 0, len(s.Steps)),
	}
	for i, step := range s.Steps {
		output, opErr := apply(seq, step)
		res := StepResult{Step: step, Output: output, Err: check(step, output, opErr)}
		if res.Err != nil {
			report.Failures++
			r.logger.Warn("[Runner] step failed", slog.String("scenario", s.Name), slog.Int("step", i+1), slog.String("op", step.Op), slog.Any("err", res.Err))
		}
		report.Steps = append(report.Steps, res)
	}
	report.Final = seq.String()
	r.logger.Debug("[Runner] scenario finished", slog.String("scenario", s.Name), slog.Int("steps", len(s.Steps)), slog.Int("failures", report.Failures))
	return report, nil
}

func (r *Runner) newSequence(s *Scenario) (sequence, error) {
	switch s.Kind {
	case KindArray:
		opts := []options.Option[container.ListOptions]{container.WithLogger(r.logger)}
		if s.Capacity != nil {
			opts = append(opts, container.WithCapacity(*s.Capacity))
		}
		l, err := container.NewArrayList[string](opts...)
		if err != nil {
			return nil, err
		}
		return arraySequence{l}, nil
	case KindLinked:
		return linkedSequence{container.NewLinkedList[string]()}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", s.Kind)
	}
}

// apply 执行单步 返回输出
func apply(seq sequence, step Step) (string, error) {
	switch step.Op {
	case OpAppend:
		seq.Append(step.Value)
		return "", nil
	case OpInsert:
		return "", seq.Insert(step.Index, step.Value)
	case OpRemoveAt:
		return seq.RemoveAt(step.Index)
	case OpRemove:
		return strconv.FormatBool(seq.Remove(step.Value)), nil
	case OpGet:
		return seq.Get(step.Index)
	case OpSet:
		return seq.Set(step.Index, step.Value)
	case OpSubList:
		sub, err := seq.subList(step.Start, step.End)
		if err != nil {
			return "", err
		}
		return sub.String(), nil
	case OpSize:
		return strconv.Itoa(seq.Size()), nil
	case OpEmpty:
		return strconv.FormatBool(seq.Empty()), nil
	case OpString:
		return seq.String(), nil
	default:
		return "", errors.Wrapf(ErrUnknownOperation, "%q", step.Op)
	}
}

// check 校验输出与期望
func check(step Step, output string, opErr error) error {
	if step.ExpectError != "" {
		var want error
		switch step.ExpectError {
		case ExpectOutOfBounds:
			want = container.ErrIndexOutOfBounds
		case ExpectInvalidArgument:
			want = container.ErrInvalidArgument
		default:
			return errors.Wrapf(ErrExpectationFailed, "unknown expected error %q", step.ExpectError)
		}
		if !errors.Is(opErr, want) {
			return errors.Wrapf(ErrExpectationFailed, "want error %s, got %v", step.ExpectError, opErr)
		}
		return nil
	}
	if opErr != nil {
		return opErr
	}
	if step.Expect != nil && *step.Expect != output {
		return errors.Wrapf(ErrExpectationFailed, "want %q, got %q", *step.Expect, output)
	}
	return nil
}
