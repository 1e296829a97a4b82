package pixarray

// Switchback lays out a strip that is folded back on itself every
// len(vertSteps) pixels. Pixels are produced lazily by Next.
type Switchback struct {
	x         int
	y         int
	id        int
	numPixels int
	emitted   int
	// Index into vertSteps for the next pixel, counted from the start of the
	// current side.
	step int
	// back is true on the second side of a fold.
	back     bool
	modifier int
}

func NewSwitchback(top int, firstID int, numPixels int) *Switchback {
	return NewSwitchbackAt(top, 0, firstID, numPixels)
}

func NewSwitchbackAt(top int, left int, firstID int, numPixels int) *Switchback {
	return &Switchback{
		x:         left,
		y:         top,
		id:        firstID,
		numPixels: numPixels,
		modifier:  1,
	}
}

func (s *Switchback) NumPixels() int {
	if s.numPixels < 0 {
		return 0
	}
	return s.numPixels
}

func (s *Switchback) Remaining() int {
	return s.NumPixels() - s.emitted
}

// Next returns the next pixel of the strip. ok is false once numPixels
// pixels have been returned; a non-positive numPixels yields nothing.
func (s *Switchback) Next() (p Pixel, ok bool) {
	if s.emitted >= s.numPixels {
		return Pixel{}, false
	}
	p = Pixel{ID: s.id, Top: s.y, Left: s.x}
	i := s.step
	if s.back {
		i = len(vertSteps) - 1 - s.step
		s.x += HorizStep * s.modifier
	} else {
		s.x -= HorizStep * s.modifier
	}
	s.y += vertSteps[i]
	s.id++
	s.emitted++
	s.step++
	if s.step == len(vertSteps) {
		s.step = 0
		if s.back {
			s.modifier = -s.modifier
		}
		s.back = !s.back
	}
	return p, true
}

func (s *Switchback) Pixels() []Pixel {
	ps := make([]Pixel, 0, s.Remaining())
	for {
		p, ok := s.Next()
		if !ok {
			return ps
		}
		ps = append(ps, p)
	}
}
