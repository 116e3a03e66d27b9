// Package script 以脚本驱动 BoundedStack，每行一条 expr 表达式
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cxykevin/bstack/library/stack"
	"github.com/cxykevin/bstack/log"
	"github.com/expr-lang/expr"
	"github.com/google/uuid"
)

// DefaultScript 内置演示脚本
const DefaultScript = `# 初始状态
display()
push(19)
push(16)
display()
pop()
display()
`

// ErrScript 脚本编译或执行失败
var ErrScript = errors.New("script: statement failed")

var logger *log.LogsObj

func init() {
	logger = log.New("script")
}

// Runner 脚本执行器
type Runner struct {
	ID     string
	stack  *stack.BoundedStack
	out    io.Writer
	strict bool
	env    map[string]any

	// 最近一次被拒绝的栈操作，用于保留错误类型
	opErr error
}

// NewRunner 创建执行器，strict 为 true 时栈满/栈空作为错误返回
func NewRunner(s *stack.BoundedStack, out io.Writer, strict bool) *Runner {
	r := &Runner{
		ID:     uuid.NewString(),
		stack:  s,
		out:    out,
		strict: strict,
	}
	r.env = r.buildEnv()
	return r
}

func (r *Runner) buildEnv() map[string]any {
	return map[string]any{
		"push": func(n int) (int, error) {
			if !r.strict {
				r.stack.Push(n)
				return r.stack.Len(), nil
			}
			if err := r.stack.TryPush(n); err != nil {
				r.opErr = fmt.Errorf("push(%d): %w", n, err)
				return 0, r.opErr
			}
			return r.stack.Len(), nil
		},
		"pop": func() (int, error) {
			if !r.strict {
				r.stack.Pop()
				return r.stack.Len(), nil
			}
			n, err := r.stack.TryPop()
			if err != nil {
				r.opErr = fmt.Errorf("pop(): %w", err)
				return 0, r.opErr
			}
			return n, nil
		},
		"peek": func() (int, error) {
			n, ok := r.stack.Top()
			if !ok {
				r.opErr = fmt.Errorf("peek(): %w", stack.ErrStackEmpty)
				return 0, r.opErr
			}
			return n, nil
		},
		"display": func() (string, error) {
			line := r.stack.String()
			if _, err := fmt.Fprintln(r.out, line); err != nil {
				r.opErr = fmt.Errorf("display(): %w", err)
				return "", r.opErr
			}
			return line, nil
		},
		"empty": func() bool { return r.stack.IsEmpty() },
		"full":  func() bool { return r.stack.IsFull() },
		"size":  func() int { return r.stack.Len() },
	}
}

// Eval 执行单条语句
func (r *Runner) Eval(statement string) (any, error) {
	program, err := expr.Compile(statement, expr.Env(r.env))
	if err != nil {
		return nil, err
	}
	r.opErr = nil
	out, err := expr.Run(program, r.env)
	if err != nil {
		if r.opErr != nil {
			return nil, r.opErr
		}
		return nil, err
	}
	return out, nil
}

// Run 逐行执行脚本，空行和 # 开头的行被忽略
func (r *Runner) Run(ctx context.Context, src string) error {
	logger.Info("run %s start (cap=%d, strict=%v)", r.ID, r.stack.Cap(), r.strict)

	sc := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			logger.Warn("run %s cancelled at line %d", r.ID, lineNo)
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := r.Eval(line); err != nil {
			logger.Error("run %s line %d %q: %v", r.ID, lineNo, line, err)
			return fmt.Errorf("%w: line %d: %w", ErrScript, lineNo, err)
		}
		logger.Debug("run %s line %d %q ok, size=%d", r.ID, lineNo, line, r.stack.Len())
	}
	if err := sc.Err(); err != nil {
		return err
	}

	logger.Info("run %s done", r.ID)
	return nil
}

// RunFile 读取并执行脚本文件
func (r *Runner) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script %s: %w", path, err)
	}
	return r.Run(ctx, string(data))
}
