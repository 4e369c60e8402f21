package cpu

import (
	"iter"
	"maps"
	"slices"
)

// Quirks select between behaviours that differ across CHIP-8 dialects.
// The zero value is the behaviour of the reference interpreter.
type Quirks struct {
	ShiftVy        bool // 8xy6/8xyE shift Vy into Vx, instead of Vx in place.
	LogicKeepVF    bool // 8xy1/8xy2/8xy3 leave VF alone, instead of clearing it.
	LoadStoreKeepI bool // Fx55/Fx65 leave I alone, instead of advancing it by x+1.
}

var _quirk_names = map[string]func(q *Quirks) *bool{
	"shift_vy":          func(q *Quirks) *bool { return &q.ShiftVy },
	"logic_keep_vf":     func(q *Quirks) *bool { return &q.LogicKeepVF },
	"load_store_keep_i": func(q *Quirks) *bool { return &q.LoadStoreKeepI },
}

// QuirkNames returns the quirk names accepted by Set, sorted.
func QuirkNames() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(_quirk_names)))
}

// Set enables or disables a quirk by name.
func (q *Quirks) Set(name string, on bool) (ok bool) {
	field, ok := _quirk_names[name]
	if ok {
		*field(q) = on
	}
	return
}

// Get reports a quirk by name.
func (q *Quirks) Get(name string) (on bool, ok bool) {
	field, ok := _quirk_names[name]
	if ok {
		on = *field(q)
	}
	return
}
