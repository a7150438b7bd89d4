package pool

// Registry направляет запрос на экземпляр в пул нужного прототипа,
// создавая пулы лениво при первом запросе.
type Registry[T Poolable] struct {
	pools map[string]*Pool[T]
	order []string
}

func NewRegistry[T Poolable]() *Registry[T] {
	return &Registry[T]{pools: make(map[string]*Pool[T])}
}

// Acquire возвращает экземпляр прототипа, переиспользуя неактивные.
func (r *Registry[T]) Acquire(prototype Prototype[T]) (T, error) {
	if prototype == nil {
		var zero T
		return zero, ErrNilPrototype
	}
	p, ok := r.pools[prototype.ID()]
	if !ok {
		p = New(prototype)
		r.pools[prototype.ID()] = p
		r.order = append(r.order, prototype.ID())
	}
	return p.Acquire()
}

// Pool возвращает пул по идентификатору прототипа.
func (r *Registry[T]) Pool(id string) (*Pool[T], bool) {
	p, ok := r.pools[id]
	return p, ok
}

// Each обходит все экземпляры всех пулов в порядке создания пулов.
func (r *Registry[T]) Each(fn func(T)) {
	for _, id := range r.order {
		r.pools[id].Each(fn)
	}
}

// Size — общее число экземпляров во всех пулах.
func (r *Registry[T]) Size() int {
	n := 0
	for _, p := range r.pools {
		n += p.Len()
	}
	return n
}

// PoolCount — сколько пулов создано.
func (r *Registry[T]) PoolCount() int {
	return len(r.pools)
}
