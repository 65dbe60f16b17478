package weft

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testSplice(t *testing.T, init []string, f func(s *VecSplice[string]), want []string) {
	t.Helper()
	v := append([]string(nil), init...)
	var scratch []string
	s := NewVecSplice(&v, &scratch)
	f(s)
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("splice result (-want +got):\n%s", diff)
	}
	if len(scratch) != 0 {
		t.Errorf("scratch not empty after pass: %v", scratch)
	}
	if s.Len() != len(v) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(v))
	}
}

func TestVecSplice_SkipKeepsElements(t *testing.T) {
	testSplice(t, []string{"a", "b", "c"},
		func(s *VecSplice[string]) { s.Skip(3) },
		[]string{"a", "b", "c"})
}

func TestVecSplice_DeleteMiddle(t *testing.T) {
	testSplice(t, []string{"a", "b", "c", "d"},
		func(s *VecSplice[string]) {
			s.Skip(1)
			s.Delete(2)
			s.Skip(1)
		},
		[]string{"a", "d"})
}

func TestVecSplice_PushDisplacesTail(t *testing.T) {
	testSplice(t, []string{"a", "b"},
		func(s *VecSplice[string]) {
			s.Push("x")
			s.Skip(2)
		},
		[]string{"x", "a", "b"})
}

func TestVecSplice_DeleteThenPushThenSkipReusesScratch(t *testing.T) {
	// The deleted head displaces b, c, d into scratch; the push keeps them
	// there; the skip pulls them back in the original order.
	testSplice(t, []string{"a", "b", "c", "d"},
		func(s *VecSplice[string]) {
			s.Delete(1)
			s.Push("x")
			s.Skip(3)
		},
		[]string{"x", "b", "c", "d"})
}

func TestVecSplice_DeleteFromScratch(t *testing.T) {
	testSplice(t, []string{"a", "b", "c"},
		func(s *VecSplice[string]) {
			s.Push("x")
			s.Skip(1)
			s.Delete(2)
		},
		[]string{"x", "a"})
}

func TestVecSplice_Mutate(t *testing.T) {
	testSplice(t, []string{"a", "b"},
		func(s *VecSplice[string]) {
			*s.Mutate() += "!"
			s.Skip(1)
		},
		[]string{"a!", "b"})
}

func TestVecSplice_MutateFromScratch(t *testing.T) {
	testSplice(t, []string{"a", "b"},
		func(s *VecSplice[string]) {
			s.Push("x")
			s.Skip(1)
			*s.Mutate() += "!"
		},
		[]string{"x", "a", "b!"})
}

func TestVecSplice_AsSlice(t *testing.T) {
	testSplice(t, []string{"a", "b"},
		func(s *VecSplice[string]) {
			s.Skip(2)
			s.AsSlice(func(v *[]string) {
				*v = append(*v, "c")
			})
		},
		[]string{"a", "b", "c"})
}

func TestVecSplice_AsSliceDisplacesTail(t *testing.T) {
	// The unprocessed tail moves into scratch before f sees the slice, so the
	// later Skip still reaches it.
	testSplice(t, []string{"a", "b", "c"},
		func(s *VecSplice[string]) {
			s.Skip(1)
			s.AsSlice(func(v *[]string) {
				if diff := cmp.Diff([]string{"a"}, *v); diff != "" {
					t.Errorf("slice seen by f (-want +got):\n%s", diff)
				}
				*v = append(*v, "x")
			})
			s.Skip(2)
		},
		[]string{"a", "x", "b", "c"})
}

func TestVecSplice_OverrunPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func(s *VecSplice[string])
	}{
		{"skip", func(s *VecSplice[string]) { s.Skip(3) }},
		{"delete", func(s *VecSplice[string]) { s.Delete(3) }},
		{"mutate", func(s *VecSplice[string]) { s.Skip(2); s.Mutate() }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("splice overrun did not panic")
				}
			}()
			v := []string{"a", "b"}
			var scratch []string
			test.f(NewVecSplice(&v, &scratch))
		})
	}
}

func TestPodSplice_FinishPanicsOnUnaccountedElements(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("finish did not panic with unprocessed tail")
		}
	}()
	pods := []Pod{{ID: 1}, {ID: 2}}
	var scratch []Pod
	s := newPodSplice(nil, &pods, &scratch)
	s.Mutate(func(*Pod) ChangeFlags { return 0 })
	s.finish()
}
