package types

// EntityID — идентификатор игровой сущности (захватчик, блок, игрок, снаряд).
type EntityID uint64

// NoEntity — нулевой идентификатор, не выдаётся реестром.
const NoEntity EntityID = 0
