package ecs

import "strconv"

// Entity packs a dense index in the low 32 bits and a generation in the high
// 32 bits. Generations start at 1, so the zero Entity is never alive.
type Entity uint64

const entityIndexBits = 32

func makeEntity(index uint32, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIndexBits | uint64(index))
}

// Index returns the dense column index of the entity.
func (e Entity) Index() int {
	return int(uint32(e))
}

func (e Entity) generation() uint32 {
	return uint32(uint64(e) >> entityIndexBits)
}

func (e Entity) String() string {
	return strconv.Itoa(e.Index()) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether the handle was ever produced by a World.
func (e Entity) Valid() bool {
	return e.generation() != 0
}
