package bitset

// Wrap forwards the full contract to an inner container, for newtype
// style wrappers that want to expose bit set behavior without aliasing
// the backend type directly. Plain struct embedding works too when the
// embedded backend's method return types are acceptable; Wrap keeps
// chaining on the wrapper itself.
type Wrap[S Bits[S]] struct {
	Inner S
}

// NewWrap returns a wrapper around the given container.
func NewWrap[S Bits[S]](inner S) *Wrap[S] {
	return &Wrap[S]{Inner: inner}
}

func (w *Wrap[S]) Len() int {
	return w.Inner.Len()
}

func (w *Wrap[S]) Init(value bool) *Wrap[S] {
	w.Inner.Init(value)
	return w
}

func (w *Wrap[S]) Test(bit int) bool {
	return w.Inner.Test(bit)
}

func (w *Wrap[S]) Set(bit int) *Wrap[S] {
	w.Inner.Set(bit)
	return w
}

func (w *Wrap[S]) Reset(bit int) *Wrap[S] {
	w.Inner.Reset(bit)
	return w
}

func (w *Wrap[S]) Flip(bit int) *Wrap[S] {
	w.Inner.Flip(bit)
	return w
}

func (w *Wrap[S]) SetTo(bit int, value bool) *Wrap[S] {
	w.Inner.SetTo(bit, value)
	return w
}

func (w *Wrap[S]) All() bool {
	return w.Inner.All()
}

func (w *Wrap[S]) Any() bool {
	return w.Inner.Any()
}

func (w *Wrap[S]) None() bool {
	return w.Inner.None()
}

func (w *Wrap[S]) Eq(rhs *Wrap[S]) bool {
	return w.Inner.Eq(rhs.Inner)
}

func (w *Wrap[S]) Disjoint(rhs *Wrap[S]) bool {
	return w.Inner.Disjoint(rhs.Inner)
}

func (w *Wrap[S]) Subset(rhs *Wrap[S]) bool {
	return w.Inner.Subset(rhs.Inner)
}

func (w *Wrap[S]) Superset(rhs *Wrap[S]) bool {
	return w.Inner.Superset(rhs.Inner)
}

func (w *Wrap[S]) Or(rhs *Wrap[S]) *Wrap[S] {
	w.Inner.Or(rhs.Inner)
	return w
}

func (w *Wrap[S]) And(rhs *Wrap[S]) *Wrap[S] {
	w.Inner.And(rhs.Inner)
	return w
}

func (w *Wrap[S]) AndNot(rhs *Wrap[S]) *Wrap[S] {
	w.Inner.AndNot(rhs.Inner)
	return w
}

func (w *Wrap[S]) Xor(rhs *Wrap[S]) *Wrap[S] {
	w.Inner.Xor(rhs.Inner)
	return w
}

func (w *Wrap[S]) Not() *Wrap[S] {
	w.Inner.Not()
	return w
}

func (w *Wrap[S]) Mask(rhs, mask *Wrap[S]) *Wrap[S] {
	w.Inner.Mask(rhs.Inner, mask.Inner)
	return w
}

func (w *Wrap[S]) Count() int {
	return w.Inner.Count()
}
