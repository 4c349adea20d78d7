// SPDX-License-Identifier: MIT

package window

// minDequeCap is the initial ring capacity; kept a power of two so the
// wrap-around is a mask, not a modulo.
const minDequeCap = 16

// Deque is an array-backed ring buffer of int positions.
// The zero value is ready to use. Peek/pop on an empty Deque panics:
// that is programmer misuse, never a user-input condition.
type Deque struct {
	buf  []int
	head int // index of the front element in buf
	n    int // number of live elements
}

// NewDeque returns a Deque with room for at least capacity elements.
// Complexity: O(capacity).
func NewDeque(capacity int) *Deque {
	c := minDequeCap
	for c < capacity {
		c <<= 1
	}

	return &Deque{buf: make([]int, c)}
}

// Len returns the number of stored positions.
func (d *Deque) Len() int { return d.n }

// Reset empties the deque while keeping its storage.
func (d *Deque) Reset() { d.head, d.n = 0, 0 }

// PushBack appends v at the back, growing storage by doubling when full.
// Complexity: amortized O(1).
func (d *Deque) PushBack(v int) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)&(len(d.buf)-1)] = v
	d.n++
}

// Front returns the front element.
func (d *Deque) Front() int {
	if d.n == 0 {
		panic("window: Front on empty Deque")
	}

	return d.buf[d.head]
}

// Back returns the back element.
func (d *Deque) Back() int {
	if d.n == 0 {
		panic("window: Back on empty Deque")
	}

	return d.buf[(d.head+d.n-1)&(len(d.buf)-1)]
}

// PopFront removes and returns the front element.
// Complexity: O(1).
func (d *Deque) PopFront() int {
	v := d.Front()
	d.head = (d.head + 1) & (len(d.buf) - 1)
	d.n--

	return v
}

// PopBack removes and returns the back element.
// Complexity: O(1).
func (d *Deque) PopBack() int {
	v := d.Back()
	d.n--

	return v
}

// grow doubles capacity and unwraps the ring so head == 0.
func (d *Deque) grow() {
	c := len(d.buf) << 1
	if c == 0 {
		c = minDequeCap
	}
	next := make([]int, c)
	for i := 0; i < d.n; i++ {
		next[i] = d.buf[(d.head+i)&(len(d.buf)-1)]
	}
	d.buf, d.head = next, 0
}
