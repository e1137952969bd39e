package distance

import "testing"

func testTable() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"depot":  {"north": 4, "south": 7},
		"north":  {"south": 9},
		"market": {"depot": 2.5},
	}
}

func TestStaticProviderSymmetry(t *testing.T) {
	p := NewStaticProvider(testTable(), 0)
	pairs := [][2]string{
		{"depot", "north"},
		{"depot", "south"},
		{"north", "south"},
		{"market", "depot"},
	}
	for _, pair := range pairs {
		fwd := p.Distance(pair[0], pair[1])
		rev := p.Distance(pair[1], pair[0])
		if fwd != rev {
			t.Errorf("distance(%s,%s)=%v but distance(%s,%s)=%v",
				pair[0], pair[1], fwd, pair[1], pair[0], rev)
		}
	}
}

func TestStaticProviderDefault(t *testing.T) {
	p := NewStaticProvider(testTable(), 0)
	if got := p.Distance("nowhere", "elsewhere"); got != DefaultKm {
		t.Fatalf("expected default %v got %v", float64(DefaultKm), got)
	}
	if p.Known("nowhere", "elsewhere") {
		t.Fatalf("unknown pair reported as known")
	}
	if !p.Known("north", "depot") {
		t.Fatalf("reverse pair should be known")
	}
}

func TestStaticProviderConfiguredDefault(t *testing.T) {
	p := NewStaticProvider(nil, 3.5)
	if got := p.Distance("a", "b"); got != 3.5 {
		t.Fatalf("expected configured default 3.5 got %v", got)
	}
	if got := p.DefaultDistance(); got != 3.5 {
		t.Fatalf("expected 3.5 got %v", got)
	}
}
