package board

// InitialLength is how many segments a fresh snake starts with.
const InitialLength = 9

// Snake is the ordered body of the player: head first, tail last. Segments
// live in a ring buffer so advancing (push front, pop back) and growing
// (splice at back) are O(1) and never touch the middle of the sequence.
// Growth segments stack on the tail cell and pay out as the snake moves.
//
// Only the rules package may mutate a snake, and only through Advance and
// Grow.
type Snake struct {
	ring   []Point
	head   int // ring index of the head segment
	length int
	facing Direction
}

// NewSnake returns the starting snake: InitialLength segments laid out
// horizontally, centered on the grid, facing east. The head sits at the east
// end of the run.
func NewSnake() *Snake {
	headX := GridWidth/2 + InitialLength/2 - 1
	y := GridHeight / 2
	body := make([]Point, InitialLength)
	for i := range body {
		body[i] = Point{X: headX - i, Y: y}
	}
	return NewSnakeFrom(body, East)
}

// NewSnakeFrom builds a snake from an explicit head-to-tail segment list.
func NewSnakeFrom(body []Point, facing Direction) *Snake {
	capacity := 16
	for capacity < len(body)+1 {
		capacity *= 2
	}
	s := &Snake{
		ring:   make([]Point, capacity),
		facing: facing,
		length: len(body),
	}
	copy(s.ring, body)
	return s
}

// Len returns the number of segments, stacked growth segments included.
func (s *Snake) Len() int {
	return s.length
}

// Head returns the most recently added segment.
func (s *Snake) Head() Point {
	return s.at(0)
}

// Tail returns the oldest segment.
func (s *Snake) Tail() Point {
	return s.at(s.length - 1)
}

// Facing returns the direction of the last advance.
func (s *Snake) Facing() Direction {
	return s.facing
}

// Advance moves the snake one cell in the given direction: the new head is
// pushed to the front and the current tail is dropped. Growth is a separate
// Grow call, so a plain advance keeps the length unchanged. Returns the new
// head position.
func (s *Snake) Advance(d Direction) Point {
	s.facing = d
	newHead := s.Head().Translate(d)
	s.pushFront(newHead)
	s.length-- // drop the tail
	return newHead
}

// Grow splices n segments onto the tail end. They occupy the tail's cell
// until successive advances pay them out.
func (s *Snake) Grow(n int) {
	tail := s.Tail()
	for i := 0; i < n; i++ {
		s.pushBack(tail)
	}
}

// SelfCollides reports whether head equals any body position behind it. The
// scan runs from the segment behind the head toward the tail.
func (s *Snake) SelfCollides(head Point) bool {
	for i := 1; i < s.length; i++ {
		if s.at(i).Equals(head) {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, head included, sits on p.
func (s *Snake) Occupies(p Point) bool {
	for i := 0; i < s.length; i++ {
		if s.at(i).Equals(p) {
			return true
		}
	}
	return false
}

// Positions returns a head-to-tail copy of the body.
func (s *Snake) Positions() []Point {
	out := make([]Point, s.length)
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

func (s *Snake) at(i int) Point {
	return s.ring[(s.head+i)%len(s.ring)]
}

func (s *Snake) pushFront(p Point) {
	s.reserve(1)
	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = p
	s.length++
}

func (s *Snake) pushBack(p Point) {
	s.reserve(1)
	s.ring[(s.head+s.length)%len(s.ring)] = p
	s.length++
}

// reserve makes room for n more segments, relinearizing into a larger ring
// when the current one is full.
func (s *Snake) reserve(n int) {
	if s.length+n <= len(s.ring) {
		return
	}
	capacity := len(s.ring) * 2
	for capacity < s.length+n {
		capacity *= 2
	}
	next := make([]Point, capacity)
	for i := 0; i < s.length; i++ {
		next[i] = s.at(i)
	}
	s.ring = next
	s.head = 0
}
