package placement

import (
	"image/color"
	"testing"
)

func TestStyleFor(t *testing.T) {
	bts := StyleFor(KindBTS)
	if bts.BaseSize != 70 {
		t.Errorf("bts BaseSize = %v, want 70", bts.BaseSize)
	}
	if want := (color.NRGBA{R: 255, G: 215, B: 0, A: 255}); bts.Palette[0] != want {
		t.Errorf("bts Palette[0] = %v, want %v", bts.Palette[0], want)
	}

	army := StyleFor(KindArmy)
	if army.BaseSize != 60 {
		t.Errorf("army BaseSize = %v, want 60", army.BaseSize)
	}
	if want := (color.NRGBA{R: 224, G: 170, B: 255, A: 255}); army.Palette[1] != want {
		t.Errorf("army Palette[1] = %v, want %v", army.Palette[1], want)
	}
	if army.Shadow.A != 100 || bts.Shadow.A != 100 {
		t.Error("shadows should be translucent (alpha 100)")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindBTS, "bts"},
		{KindArmy, "army"},
		{Kind(9), "kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.NRGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0x10}); got != "#d4af37" {
		t.Errorf("Hex() = %q, want #d4af37", got)
	}
}
