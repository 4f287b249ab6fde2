package core

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#e74c3c", RGB(231, 76, 60), false},
		{"#3498db", RGB(52, 152, 219), false},
		{"#fff", RGB(255, 255, 255), false},
		{"e74c3c", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseHex(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if ColorCyan.Hex() != "#64c8ff" {
		t.Errorf("Hex() = %q, want #64c8ff", ColorCyan.Hex())
	}
	if ColorDefault.Hex() != "" {
		t.Errorf("default color should have empty hex, got %q", ColorDefault.Hex())
	}
	if ColorDefault.IsSet() || !ColorBlack.IsSet() {
		t.Error("IsSet should distinguish default from black")
	}
}

func TestBlend(t *testing.T) {
	top := RGB(20, 20, 20)
	bottom := RGB(30, 30, 40)

	if got := Blend(top, bottom, 0); got != top {
		t.Errorf("Blend(t=0) = %+v, want %+v", got, top)
	}
	if got := Blend(top, bottom, 1); got != bottom {
		t.Errorf("Blend(t=1) = %+v, want %+v", got, bottom)
	}
	if got := Blend(top, bottom, 2); got != bottom {
		t.Errorf("Blend should clamp t, got %+v", got)
	}

	mid := Blend(top, bottom, 0.5)
	if mid.B < 29 || mid.B > 31 {
		t.Errorf("Blend(t=0.5) blue = %d, want ~30", mid.B)
	}
}
