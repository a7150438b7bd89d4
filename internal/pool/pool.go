package pool

import (
	"errors"
	"fmt"
)

// ErrNilPrototype возвращается, если запрошен экземпляр без прототипа.
var ErrNilPrototype = errors.New("pool: nil prototype")

// Poolable — экземпляр, который пул умеет переиспользовать.
// Пул не деактивирует экземпляры сам: потребитель выключает их напрямую,
// а пул узнаёт о свободных экземплярах, опрашивая флаг при следующем Acquire.
type Poolable interface {
	IsActive() bool
}

// Prototype описывает, как построить новый экземпляр.
// ID — ключ, по которому реестр различает пулы.
type Prototype[T Poolable] interface {
	ID() string
	Instantiate() (T, error)
}

// Pool хранит все экземпляры одного прототипа. Размер только растёт.
type Pool[T Poolable] struct {
	prototype Prototype[T]
	items     []T
}

// New создаёт пустой пул для прототипа.
func New[T Poolable](prototype Prototype[T]) *Pool[T] {
	return &Pool[T]{prototype: prototype}
}

// Acquire возвращает первый неактивный экземпляр, а если такого нет,
// строит ровно один новый и регистрирует его.
func (p *Pool[T]) Acquire() (T, error) {
	for _, item := range p.items {
		if !item.IsActive() {
			return item, nil
		}
	}

	var zero T
	if p.prototype == nil {
		return zero, ErrNilPrototype
	}
	item, err := p.prototype.Instantiate()
	if err != nil {
		return zero, fmt.Errorf("instantiate %q: %w", p.prototype.ID(), err)
	}
	p.items = append(p.items, item)
	return item, nil
}

// Len — сколько экземпляров когда-либо создано.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// ActiveCount — сколько экземпляров сейчас активны.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for _, item := range p.items {
		if item.IsActive() {
			n++
		}
	}
	return n
}

// Each вызывает fn для каждого экземпляра в порядке создания.
func (p *Pool[T]) Each(fn func(T)) {
	for _, item := range p.items {
		fn(item)
	}
}
