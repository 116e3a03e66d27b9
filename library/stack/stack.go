// Package stack 定长整数栈
package stack

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSentinel 空槽位的默认占位值
const DefaultSentinel = -99

// BoundedStack 定长整数栈，容量在创建时确定
type BoundedStack struct {
	slots    []int
	capacity int
	top      int // -1 表示空栈
	sentinel int
}

// Option 创建选项
type Option func(*BoundedStack)

// WithSentinel 指定空槽位占位值
func WithSentinel(v int) Option {
	return func(s *BoundedStack) {
		s.sentinel = v
	}
}

// New 创建容量为 capacity 的栈，所有槽位填充占位值
func New(capacity int, opts ...Option) (*BoundedStack, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	s := &BoundedStack{
		slots:    make([]int, capacity),
		capacity: capacity,
		top:      -1,
		sentinel: DefaultSentinel,
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.slots {
		s.slots[i] = s.sentinel
	}
	return s, nil
}

// IsEmpty 检查栈是否为空
func (s *BoundedStack) IsEmpty() bool {
	return s.top == -1
}

// IsFull 检查 top 是否等于容量
//
// 注意：top 最多到 capacity-1，所以通过 Push/Pop 永远不会返回 true。
// 需要判断能否继续压栈请用 Len() == Cap() 或 TryPush。
func (s *BoundedStack) IsFull() bool {
	return s.top == s.capacity
}

func (s *BoundedStack) hasRoom() bool {
	return s.top+1 < s.capacity
}

// Push 将元素压入栈顶，栈满时什么都不做
func (s *BoundedStack) Push(n int) {
	if s.IsFull() || !s.hasRoom() {
		return
	}
	s.top++
	s.slots[s.top] = n
}

// Pop 弹出栈顶元素并丢弃，空栈时什么都不做
func (s *BoundedStack) Pop() {
	if s.IsEmpty() {
		return
	}
	s.slots[s.top] = s.sentinel
	s.top--
}

// TryPush 压栈，栈满时返回 ErrStackFull
func (s *BoundedStack) TryPush(n int) error {
	if !s.hasRoom() {
		return ErrStackFull
	}
	s.Push(n)
	return nil
}

// TryPop 弹出并返回栈顶元素，空栈时返回 ErrStackEmpty
func (s *BoundedStack) TryPop() (int, error) {
	if s.IsEmpty() {
		return 0, ErrStackEmpty
	}
	n := s.slots[s.top]
	s.Pop()
	return n, nil
}

// Top 查看栈顶元素但不移除
func (s *BoundedStack) Top() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.slots[s.top], true
}

// Len 返回栈中元素的数量
func (s *BoundedStack) Len() int {
	return s.top + 1
}

// Cap 返回容量
func (s *BoundedStack) Cap() int {
	return s.capacity
}

// Sentinel 返回空槽位占位值
func (s *BoundedStack) Sentinel() int {
	return s.sentinel
}

// Values 返回栈中的有效元素，栈底在前
func (s *BoundedStack) Values() []int {
	out := make([]int, s.Len())
	copy(out, s.slots[:s.Len()])
	return out
}

// Display 返回全部槽位（含占位值）的副本
func (s *BoundedStack) Display() []int {
	out := make([]int, s.capacity)
	copy(out, s.slots)
	return out
}

// String 以空格分隔输出全部槽位
func (s *BoundedStack) String() string {
	var sb strings.Builder
	for i, v := range s.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
