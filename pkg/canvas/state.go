// pkg/canvas/state.go
package canvas

// Stack keeps the current transform and the Save/Restore history on behalf
// of a backend. Embed it to get SetTransform, Translate, Rotate, Scale, Save
// and Restore.
type Stack struct {
	base  Matrix
	cur   Matrix
	saved []Matrix
}

// NewStack starts with cur = base.
func NewStack(base Matrix) Stack {
	return Stack{base: base, cur: base}
}

// Reset sets a new base and drops any saved states.
func (s *Stack) Reset(base Matrix) {
	s.base = base
	s.cur = base
	s.saved = s.saved[:0]
}

// Current is the full user-to-pixel transform.
func (s *Stack) Current() Matrix {
	return s.cur
}

// Base is the surface transform.
func (s *Stack) Base() Matrix {
	return s.base
}

// Depth is the number of unmatched Save calls.
func (s *Stack) Depth() int {
	return len(s.saved)
}

func (s *Stack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last saved state. Unbalanced calls are ignored.
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) SetTransform(m Matrix) {
	s.cur = s.base.Mul(m)
}

func (s *Stack) Translate(x, y float64) {
	s.cur = s.cur.Mul(TranslateMatrix(x, y))
}

func (s *Stack) Rotate(angle float64) {
	s.cur = s.cur.Mul(RotateMatrix(angle))
}

func (s *Stack) Scale(sx, sy float64) {
	s.cur = s.cur.Mul(ScaleMatrix(sx, sy))
}
