//go:build go1.18

package list

import (
	"testing"

	"github.com/IvanBrykalov/indexlist/compare"
)

// Fuzz a stream of positional operations against a plain slice model.
// Each byte pair is (opcode, argument). After every step the list must match
// the model and the index must agree with the chain.
func FuzzList_Ops(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 1, 1, 0})
	f.Add([]byte{0, 0, 0, 0, 0, 0, 2, 1, 3, 0, 4, 1})
	f.Add([]byte{1, 200, 0, 255, 5, 0, 5, 1})

	f.Fuzz(func(t *testing.T, ops []byte) {
		// Cap the script to keep each run short.
		const limit = 1 << 10
		if len(ops) > limit {
			ops = ops[:limit]
		}

		l := New[int](Options[int]{Compare: compare.Ordered[int]}).(*list[int])
		var model []int

		for i := 0; i+1 < len(ops); i += 2 {
			arg := int(ops[i+1])
			switch ops[i] % 6 {
			case 0: // insert at arg mod (len+2), sometimes past the end
				pos := arg % (len(model) + 2)
				if err := l.InsertAt(i, pos); err != nil {
					t.Fatalf("InsertAt(%d): %v", pos, err)
				}
				if pos <= len(model) {
					model = append(model[:pos], append([]int{i}, model[pos:]...)...)
				}
			case 1: // remove at arg mod (len+1), sometimes past the end
				pos := arg % (len(model) + 1)
				if err := l.RemoveAt(pos); err != nil {
					t.Fatalf("RemoveAt(%d): %v", pos, err)
				}
				if pos < len(model) {
					model = append(model[:pos], model[pos+1:]...)
				}
			case 2: // remove by value if present
				if len(model) == 0 {
					if err := l.RemoveValue(arg); err == nil {
						t.Fatalf("RemoveValue on empty list succeeded")
					}
					continue
				}
				v := model[arg%len(model)]
				if err := l.RemoveValue(v); err != nil {
					t.Fatalf("RemoveValue(%d): %v", v, err)
				}
				for j := range model {
					if model[j] == v {
						model = append(model[:j], model[j+1:]...)
						break
					}
				}
			case 3:
				l.Sort(nil, arg%2 == 0)
				sortModel(model, arg%2 == 0)
			case 4:
				if err := l.InsertAt(arg, -1-arg); err == nil {
					t.Fatalf("negative InsertAt accepted")
				}
			case 5:
				l.Clear()
				model = model[:0]
			}

			if l.Len() != len(model) {
				t.Fatalf("len: want %d, got %d", len(model), l.Len())
			}
			for p, want := range model {
				if got, ok := l.At(p); !ok || got != want {
					t.Fatalf("At(%d): want %d, got %d ok=%v", p, want, got, ok)
				}
			}
			requireConsistent(t, l)
		}
	})
}

// sortModel is a stable insertion sort, same contract as List.Sort.
func sortModel(s []int, ascending bool) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i
		for j > 0 && ((ascending && s[j-1] > v) || (!ascending && s[j-1] < v)) {
			s[j] = s[j-1]
			j--
		}
		s[j] = v
	}
}
