package dstruct

import (
	"encoding/json"
	"strconv"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sor-reader/sor/dmap"
)

func (d Document) Len() int {
	return len(d.Blocks)
}

func (d Document) At(index int) Block {
	return d.Blocks[index]
}

func (d Document) Map() (dmap.Block, bool) {
	return Find[dmap.Block](d)
}

// Get returns the first block called name.
func (d Document) Get(name string) (Block, bool) {
	return lo.Find(
		d.Blocks,
		func(block Block) bool {
			return block.BlockName() == name
		},
	)
}

// Find returns the first block of type T, e.g. Find[dfxd.Block](document).
func Find[T Block](d Document) (T, bool) {
	for _, block := range d.Blocks {
		if t, ok := block.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// ToLinkedHashMap keys the blocks by name, keeping directory order. When a
// name repeats, the later block wins but keeps the position of the first.
func (d Document) ToLinkedHashMap() *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	for _, block := range d.Blocks {
		lhm.Set(block.BlockName(), block)
	}
	return lhm
}

// Lookup reads a nested field by its JSON name, starting with the block
// name, for example Lookup("KeyEvents", "events", "0", "comment"). Array
// elements are addressed by their decimal index.
func (d Document) Lookup(blockName string, path ...string) (any, error) {
	block, ok := d.Get(blockName)
	if !ok {
		return nil, errors.Errorf(`Lookup error: no block "%s"`, blockName)
	}
	blockBytes, err := json.Marshal(block)
	if err != nil {
		return nil, errors.Wrapf(err, `Lookup error: marshal block "%s"`, blockName)
	}
	lhm := orderedmap.New()
	if err := json.Unmarshal(blockBytes, lhm); err != nil {
		return nil, errors.Wrapf(err, `Lookup error: unmarshal block "%s"`, blockName)
	}

	value := any(*lhm)
	for i, key := range path {
		next, ok := lookupKey(value, key)
		if !ok {
			return nil, errors.Errorf(`Lookup error: no field "%s" at %v`, key, append([]string{blockName}, path[:i]...))
		}
		value = next
	}
	return value, nil
}

func lookupKey(value any, key string) (any, bool) {
	switch v := value.(type) {
	case orderedmap.OrderedMap:
		return v.Get(key)
	case *orderedmap.OrderedMap:
		return v.Get(key)
	case []any:
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= len(v) {
			return nil, false
		}
		return v[index], true
	}
	return nil, false
}
