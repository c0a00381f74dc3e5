package tripod

import "fmt"

// DefaultCapacity is the number of node slots an arena pre-allocates if the
// configuration does not say otherwise.
const DefaultCapacity = 64

// Config configures an arena and, through it, all trees created from it.
type Config[T any] struct {
	// InitialCapacity is the number of node slots to pre-allocate.
	// 0 selects DefaultCapacity.
	InitialCapacity int
	// Release, if set, is called for every value dropped by Tree.Clear.
	//
	// A Release function must not panic. If it does, the tree being cleared is
	// left partially released and must not be used any more.
	Release func(T)
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.InitialCapacity < 0 {
		return fmt.Errorf("%w: negative initial capacity %d", ErrInvalidConfig, cfg.InitialCapacity)
	}
	return nil
}
