package stack

import "errors"

var (
	// ErrInvalidCapacity 容量不是正数
	ErrInvalidCapacity = errors.New("stack: invalid capacity")
	// ErrStackFull 栈已满
	ErrStackFull = errors.New("stack: full")
	// ErrStackEmpty 栈为空
	ErrStackEmpty = errors.New("stack: empty")
)
