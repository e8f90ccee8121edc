package mathematics

import "testing"

func TestFuncTables(t *testing.T) {
	for name, k := range globalfuncs {
		if _, ok := funcnames[k]; !ok {
			t.Errorf("%s (%v) has no display name", name, k)
		}
		if dumpnames[k] == "" {
			t.Errorf("%s (%v) has no dump name", name, k)
		}
		if _, ok := monadic[k]; ok == (k == KindLog) {
			t.Errorf("%s (%v): wrong presence in monadic", name, k)
		}
		if _, ok := globalconsts[name]; ok {
			t.Errorf("%s is both a function and a constant", name)
		}
	}
	for k, inv := range inverses {
		if _, ok := funcnames[k]; !ok {
			t.Errorf("inverse of %v has no display name", k)
		}
		if _, ok := monadic[inv]; !ok {
			t.Errorf("inverse %v of %v can't be evaluated", inv, k)
		}
	}
}

func TestFuncNamesReparse(t *testing.T) {
	for k, name := range funcnames {
		t.Run(name, func(t *testing.T) {
			a, err := ParseString(name + "(x)")
			if err != nil {
				t.Fatalf("%s(x) didn't parse: %v", name, err)
			}
			if a.Kind() != k {
				t.Errorf("%s(x) parsed as %v, want %v", name, a.Kind(), k)
			}
		})
	}
}

func TestCanCall(t *testing.T) {
	cases := []struct {
		k  Kind
		n  int
		ok bool
	}{
		{KindSqrt, 0, false},
		{KindSqrt, 1, true},
		{KindSqrt, 2, false},
		{KindSin, 1, true},
		{KindLog, 0, false},
		{KindLog, 1, true},
		{KindLog, 2, true},
		{KindLog, 3, false},
	}
	for _, c := range cases {
		if got := canCall(c.k, c.n); got != c.ok {
			t.Errorf("canCall(%v, %d) = %t, want %t", c.k, c.n, got, c.ok)
		}
	}
}

func TestReserved(t *testing.T) {
	for name := range globalfuncs {
		if !Reserved(name) {
			t.Errorf("function %q not reserved", name)
		}
	}
	for name := range globalconsts {
		if !Reserved(name) {
			t.Errorf("constant %q not reserved", name)
		}
	}
	for _, name := range []string{"x", "sine", "E", "Pi", "exp", ""} {
		if Reserved(name) {
			t.Errorf("%q should not be reserved", name)
		}
	}
}
