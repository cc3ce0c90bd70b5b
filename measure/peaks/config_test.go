package peaks

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	want := Config{
		PeakFraction: 0.5,
		MinDistance:  20,
		DoFiltering:  true,
		MinWidth:     1,
		MaxWidth:     100,
		MinHeight:    5.5,
	}

	if cfg != want {
		t.Fatalf("DefaultConfig() = %+v, want %+v", cfg, want)
	}

	if normalizeConfig(cfg) != cfg {
		t.Fatal("defaults must already be normalized")
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(
		WithPeakFraction(0.25),
		WithMinDistance(8),
		WithFiltering(false),
		WithWidthRange(2, 12),
		WithMinHeight(3),
		WithFitFloor(1),
		nil,
	)

	want := Config{
		PeakFraction: 0.25,
		MinDistance:  8,
		DoFiltering:  false,
		MinWidth:     2,
		MaxWidth:     12,
		MinHeight:    3,
		FitFloor:     1,
	}

	if cfg != want {
		t.Fatalf("ApplyOptions() = %+v, want %+v", cfg, want)
	}
}

func TestNormalizeConfig(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "clamps low values",
			in:   Config{PeakFraction: -1, MinDistance: 0, MinWidth: 0, MaxWidth: 0, MinHeight: -4},
			want: Config{PeakFraction: 0, MinDistance: 2, MinWidth: 1, MaxWidth: 1, MinHeight: 0},
		},
		{
			name: "clamps fraction above one",
			in:   Config{PeakFraction: 3, MinDistance: 5, MinWidth: 2, MaxWidth: 4},
			want: Config{PeakFraction: 1, MinDistance: 5, MinWidth: 2, MaxWidth: 4},
		},
		{
			name: "infinite fractions clamp",
			in:   Config{PeakFraction: math.Inf(-1), MinDistance: 5, MinWidth: 1, MaxWidth: 5},
			want: Config{PeakFraction: 0, MinDistance: 5, MinWidth: 1, MaxWidth: 5},
		},
		{
			name: "max width follows min width",
			in:   Config{PeakFraction: 0.5, MinDistance: 5, MinWidth: 10, MaxWidth: 3},
			want: Config{PeakFraction: 0.5, MinDistance: 5, MinWidth: 10, MaxWidth: 10},
		},
		{
			name: "NaN falls back to defaults",
			in:   Config{PeakFraction: nan, MinDistance: nan, MinWidth: nan, MaxWidth: nan, MinHeight: nan, FitFloor: nan},
			want: Config{PeakFraction: 0.5, MinDistance: 20, MinWidth: 1, MaxWidth: 100, MinHeight: 5.5},
		},
		{
			name: "fit floor may be negative",
			in:   Config{PeakFraction: 0.5, MinDistance: 5, MinWidth: 1, MaxWidth: 5, FitFloor: -3},
			want: Config{PeakFraction: 0.5, MinDistance: 5, MinWidth: 1, MaxWidth: 5, FitFloor: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Fatalf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
