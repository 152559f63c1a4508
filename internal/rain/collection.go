package rain

// MaxCapacity bounds collection storage. Growth past it is an allocation
// failure.
const MaxCapacity = 1 << 20

// Collection is an owned, contiguous sequence of drops. Only indices below
// Len are valid; storage grows by doubling or by ResizeTo.
type Collection struct {
	drops []Drop
	size  int
}

// NewCollection allocates room for capacity drops with length zero.
func NewCollection(capacity int) (*Collection, error) {
	c := &Collection{}
	if err := c.Init(capacity); err != nil {
		return nil, err
	}
	return c, nil
}

// Init (re)allocates storage for capacity drops and empties the collection.
func (c *Collection) Init(capacity int) error {
	if capacity <= 0 || capacity > MaxCapacity {
		return &Error{Op: "init", Value: capacity, Wrapped: ErrAllocation}
	}
	c.drops = make([]Drop, capacity)
	c.size = 0
	return nil
}

func (c *Collection) Len() int { return c.size }
func (c *Collection) Cap() int { return len(c.drops) }

// Add appends d, doubling storage first when full. Existing drops keep
// their order.
func (c *Collection) Add(d Drop) error {
	if c.drops == nil {
		return &Error{Op: "add", Value: 0, Wrapped: ErrAllocation}
	}
	if c.size == len(c.drops) {
		if err := c.grow(2 * len(c.drops)); err != nil {
			return err
		}
	}
	c.drops[c.size] = d
	c.size++
	return nil
}

func (c *Collection) grow(capacity int) error {
	if capacity > MaxCapacity {
		return &Error{Op: "grow", Value: capacity, Wrapped: ErrAllocation}
	}
	drops := make([]Drop, capacity)
	copy(drops, c.drops[:c.size])
	c.drops = drops
	return nil
}

// At returns the drop at index. There is no clamping.
func (c *Collection) At(index int) (*Drop, error) {
	if index < 0 || index >= c.size {
		return nil, &Error{Op: "access", Value: index, Wrapped: ErrOutOfBounds}
	}
	return &c.drops[index], nil
}

// ResizeTo throws every drop away and fills fresh storage with exactly
// count drops from create. Positions are never carried over.
func (c *Collection) ResizeTo(count int, create func() Drop) error {
	var fresh Collection
	if err := fresh.Init(count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := fresh.Add(create()); err != nil {
			return err
		}
	}
	c.Destroy()
	*c = fresh
	return nil
}

// Destroy releases storage. The collection is unusable until Init.
func (c *Collection) Destroy() {
	c.drops = nil
	c.size = 0
}
