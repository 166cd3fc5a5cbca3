package pulse

import (
	"slices"
	"sync"
	"sync/atomic"
)

// ResizeSource delivers viewport changes to subscribers until the returned
// cancel function is called.
type ResizeSource interface {
	Subscribe(fn func(Viewport)) (cancel func())
}

type snapshot struct {
	gen      uint64
	viewport *Viewport
	cells    []Cell
}

// Layer is the single owner of the current pulse cells.
type Layer struct {
	cfg  Config
	seed uint64

	next  atomic.Uint64
	state atomic.Pointer[snapshot]
}

// NewLayer returns a layer with no cells.
func NewLayer(cfg Config, seed uint64) *Layer {
	l := &Layer{cfg: cfg, seed: seed}
	l.state.Store(&snapshot{})
	return l
}

// Resize recomputes the cells for vp and publishes them, unless a later
// resize has already published. It returns the generation it computed.
func (l *Layer) Resize(vp *Viewport) uint64 {
	gen := l.next.Add(1)

	s := &snapshot{gen: gen}
	if vp != nil {
		v := *vp
		s.viewport = &v
		s.cells = Generate(&v, l.cfg, NewRand(l.seed, v))
	}

	for {
		cur := l.state.Load()
		if cur.gen > gen {
			return gen
		}
		if l.state.CompareAndSwap(cur, s) {
			return gen
		}
	}
}

// Cells returns a copy of the current cell set.
func (l *Layer) Cells() []Cell { return slices.Clone(l.state.Load().cells) }

// Generation returns the generation of the current cell set. Zero means no
// resize has been published yet.
func (l *Layer) Generation() uint64 { return l.state.Load().gen }

// Viewport returns the viewport of the current cell set, or nil.
func (l *Layer) Viewport() *Viewport {
	if v := l.state.Load().viewport; v != nil {
		c := *v
		return &c
	}
	return nil
}

// Mount subscribes the layer to src. The returned release function
// unsubscribes and is safe to call more than once.
func (l *Layer) Mount(src ResizeSource) (release func()) {
	cancel := src.Subscribe(func(vp Viewport) { l.Resize(&vp) })
	return sync.OnceFunc(cancel)
}

// Broadcaster is a ResizeSource fed by explicit Publish calls, e.g. from a
// terminal window-size event.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Viewport)
}

// Subscribe registers fn for future publishes.
func (b *Broadcaster) Subscribe(fn func(Viewport)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]func(Viewport))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers vp to every current subscriber.
func (b *Broadcaster) Publish(vp Viewport) {
	b.mu.Lock()
	fns := make([]func(Viewport), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(vp)
	}
}

// Len returns the number of subscribers.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

var _ ResizeSource = (*Broadcaster)(nil)
