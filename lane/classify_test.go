package lane

import "testing"

func TestIsUpperIsLower(t *testing.T) {
	cases := []struct {
		b            byte
		wantU, wantL bool
	}{
		{'A', true, false},
		{'Z', true, false},
		{'a', false, true},
		{'z', false, true},
		{'0', false, false},
		{'-', false, false},
	}
	for _, c := range cases {
		if got := IsUpper(c.b); got != c.wantU {
			t.Errorf("IsUpper(%q) = %v, want %v", c.b, got, c.wantU)
		}
		if got := IsLower(c.b); got != c.wantL {
			t.Errorf("IsLower(%q) = %v, want %v", c.b, got, c.wantL)
		}
	}
}

func TestToLower(t *testing.T) {
	cases := []struct{ in, want byte }{
		{'A', 'a'}, {'Z', 'z'}, {'a', 'a'}, {'0', '0'}, {'-', '-'},
	}
	for _, c := range cases {
		if got := ToLower(c.in); got != c.want {
			t.Errorf("ToLower(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClassify(t *testing.T) {
	got := Classify('B')
	want := Classified{Lower: 'b', IsUpper: true}
	if got != want {
		t.Errorf("Classify('B') = %+v, want %+v", got, want)
	}

	got = Classify('b')
	want = Classified{Lower: 'b', IsUpper: false}
	if got != want {
		t.Errorf("Classify('b') = %+v, want %+v", got, want)
	}
}
