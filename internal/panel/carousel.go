package panel

// Direction selects which way the carousel moves.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Carousel walks an ordered key sequence circularly.
type Carousel struct {
	keys    []string
	current string
}

// NewCarousel positions a carousel on current within keys.
func NewCarousel(keys []string, current string) Carousel {
	return Carousel{keys: keys, current: current}
}

// Current returns the key the carousel is positioned on.
func (c Carousel) Current() string { return c.current }

// Next moves forward, wrapping from the last key to the first.
func (c *Carousel) Next() string { return c.move(Next) }

// Prev moves backward, wrapping from the first key to the last.
func (c *Carousel) Prev() string { return c.move(Prev) }

func (c *Carousel) move(dir Direction) string {
	n := len(c.keys)
	if n == 0 {
		return c.current
	}
	i := c.index()
	if i < 0 {
		// not positioned: next lands on the first key, prev on the last
		if dir == Next {
			i = -1
		} else {
			i = 0
		}
	}
	i = (i + int(dir) + n) % n
	c.current = c.keys[i]
	return c.current
}

func (c Carousel) index() int {
	for i, k := range c.keys {
		if k == c.current {
			return i
		}
	}
	return -1
}
