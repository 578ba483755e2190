package evaluator

import (
	"fmt"
	"strings"
)

// Stack is the evaluator's value stack.
type Stack struct {
	items []Object
}

func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) Push(obj Object) {
	s.items = append(s.items, obj)
}

func (s *Stack) Pop() (Object, error) {
	if len(s.items) == 0 {
		return nil, fmt.Errorf("stack underflow")
	}
	obj := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return obj, nil
}

func (s *Stack) Peek() (Object, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) Len() int { return len(s.items) }

// Items returns the stack bottom-to-top.
func (s *Stack) Items() []Object {
	return append([]Object{}, s.items...)
}

func (s *Stack) String() string {
	parts := make([]string, len(s.items))
	for i, obj := range s.items {
		parts[i] = obj.Inspect()
	}
	return strings.Join(parts, " ")
}
