package cpu

const (
	STACK_LIMIT = 16 // Maximum nesting of subroutine calls.
)

// Stack is the fixed depth return address stack.
// Sp is the count of occupied slots, and indexes the next free slot.
type Stack struct {
	Data [STACK_LIMIT]uint16
	Sp   int
}

// Push stores a return address. Fails when the stack is full.
func (s *Stack) Push(value uint16) (ok bool) {
	if s.Full() {
		return
	}

	s.Data[s.Sp] = value
	s.Sp++
	return true
}

// Pop removes the most recent return address. Fails when the stack is empty.
func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Sp--
	}
	return
}

func (s *Stack) Empty() bool {
	return s.Sp <= 0
}

func (s *Stack) Full() bool {
	return s.Sp >= STACK_LIMIT
}

// Len is the number of occupied slots.
func (s *Stack) Len() int {
	return s.Sp
}

func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[s.Sp-1], true
}

func (s *Stack) Reset() {
	clear(s.Data[:])
	s.Sp = 0
}
