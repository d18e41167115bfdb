package notation

import "testing"

func TestShort(t *testing.T) {
	tests := []struct {
		name       string
		value, unc float64
		opts       []Option
		want       string
	}{
		{"negative", -13.6e-3, 0.34e-3, []Option{ExponentSeparator("E")}, "-1.360(34)E-2"},
		{"default separator", -13.6e-3, 0.34e-3, nil, "-1.360(34)x10^-2"},
		{"no uncertainty", 1234.5, 0, nil, "1.2345x10^3"},
		{"zero value", 0, 0.05, nil, "0(5.0)x10^-2"},
		{"same decade", 12.3, 1.2, nil, "1.23(12)x10^1"},
		{"one digit", 2.5, 0.5, []Option{UncertaintyDigits(1)}, "2.5(5)"},
		{"half to even", 0.125, 0, nil, "1.2x10^-1"},
		{"uncertainty above value", 1.5, 25, nil, "1.5(25.0)"},
		{"decimal comma", 12.3, 1.2, []Option{DecimalSeparator(","), ExponentSeparator("e")}, "1,23(12)e1"},
		{"zero", 0, 0, nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Short(tt.value, tt.unc, tt.opts...); got != tt.want {
				t.Errorf("Short(%g, %g) = %q, want %q", tt.value, tt.unc, got, tt.want)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	if got := Measure("truc", -13.6e-3, 0.34e-3, "keV"); got != "truc = -1.360(34)E-2 keV" {
		t.Errorf("got %q", got)
	}
	if got := Measure("truc", -13.6e-3, 0.34e-3, "", WithName(false)); got != "-1.360(34)E-2" {
		t.Errorf("got %q", got)
	}
	if got := Measure("x", 2.5, 0.5, "s", UncertaintyDigits(1), NameSeparator("=")); got != "x=2.5(5) s" {
		t.Errorf("got %q", got)
	}
}
