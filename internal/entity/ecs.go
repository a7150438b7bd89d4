// internal/entity/ecs.go
package entity

import "go-space-invaders/internal/types"

// Registry выдаёт уникальные идентификаторы сущностей в пределах сессии.
// Сущности хранятся у своих владельцев (строки, пул, игрок), реестр только нумерует их.
type Registry struct {
	nextID types.EntityID
}

func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// NewEntity возвращает следующий свободный идентификатор.
func (r *Registry) NewEntity() types.EntityID {
	id := r.nextID
	r.nextID++
	return id
}

// Issued — сколько идентификаторов уже выдано.
func (r *Registry) Issued() int {
	return int(r.nextID - 1)
}
