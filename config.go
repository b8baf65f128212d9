package spatial

import (
	"github.com/Apostolique/Apos.Spatial/dtree"
)

// AABBConfig configures an AABBTree. Unset fields default exactly like
// dtree.Config does.
type AABBConfig struct {
	InitialCapacity int
	ExpandConstant  float64
	MoveConstant    float64
}

func (cfg AABBConfig) toDtree() dtree.Config[Rect, Vector2] {
	return dtree.Config[Rect, Vector2]{
		Keys:            aabbKeys{},
		InitialCapacity: cfg.InitialCapacity,
		ExpandConstant:  cfg.ExpandConstant,
		MoveConstant:    cfg.MoveConstant,
	}
}

// IntervalConfig configures an IntervalTree. Unset fields default exactly
// like dtree.Config does.
type IntervalConfig struct {
	InitialCapacity int
	ExpandConstant  float64
	MoveConstant    float64
}

func (cfg IntervalConfig) toDtree() dtree.Config[Interval, float64] {
	return dtree.Config[Interval, float64]{
		Keys:            intervalKeys{},
		InitialCapacity: cfg.InitialCapacity,
		ExpandConstant:  cfg.ExpandConstant,
		MoveConstant:    cfg.MoveConstant,
	}
}
