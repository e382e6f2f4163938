package icons

import "testing"

func TestResolveKnownIcon(t *testing.T) {
	if got := Resolve("Leaf"); got != Leaf {
		t.Errorf("Leaf çözülemedi: %q", got)
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	for _, name := range []string{"", "Rocket", "leaf", "utensils-crossed"} {
		if got := Resolve(name); got != Default {
			t.Errorf("%q için varsayılan ikon beklenirdi, %q döndü", name, got)
		}
	}
}
