package color

import (
	"image/color"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
)

func blueLight() *RandomColor {
	return New().Hue(Blue).Luminosity(Light).Seed(42).Alpha(1.0)
}

func TestSeededOutputs(t *testing.T) {
	tests := []struct {
		name string
		got  func(rc *RandomColor) any
		want any
	}{
		{"hsv", func(rc *RandomColor) any { return rc.HSV() }, HSV{227, 33, 98}},
		{"rgb", func(rc *RandomColor) any { return rc.RGB() }, Color{167, 185, 249}},
		{"rgb string", func(rc *RandomColor) any { return rc.RGBString() }, "rgb(167, 185, 249)"},
		{"rgba string", func(rc *RandomColor) any { return rc.RGBAString() }, "rgba(167, 185, 249, 1)"},
		{"rgba", func(rc *RandomColor) any { return rc.RGBA() }, color.RGBA{167, 185, 249, 255}},
		{"rgb float", func(rc *RandomColor) any { return rc.RGBFloat() }, [3]float64{167.0 / 255, 185.0 / 255, 249.0 / 255}},
		{"rgba float", func(rc *RandomColor) any { return rc.RGBAFloat() }, [4]float64{167.0 / 255, 185.0 / 255, 249.0 / 255, 1}},
		{"hsl", func(rc *RandomColor) any { return rc.HSL() }, HSL{227, 88, 18}},
		{"hsl string", func(rc *RandomColor) any { return rc.HSLString() }, "hsl(227, 88%, 18%)"},
		{"hsla string", func(rc *RandomColor) any { return rc.HSLAString() }, "hsla(227, 88%, 18%, 1)"},
		{"hex", func(rc *RandomColor) any { return rc.Hex() }, "#a7b9f9"},
		{"colorful", func(rc *RandomColor) any { return rc.Colorful().Hex() }, "#a7b9f9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(blueLight()); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeededSequence(t *testing.T) {
	tests := []struct {
		name string
		rc   *RandomColor
		want []string
	}{
		{"blue light", blueLight(), []string{"#a7b9f9", "#6f9bed", "#85d5f7", "#c4d9fc"}},
		{"dark pads single digits", New().Luminosity(Dark).Seed(5), []string{"#1a0568", "#e0d616", "#8c9e06", "#d31078"}},
		{"unconstrained", New().Seed(7), []string{"#fcc7d4", "#f2e68c", "#e09aed", "#478eb7"}},
		{"pink bright", New().Hue(Pink).Luminosity(Bright).Seed(9), []string{"#ea1788", "#e957f9", "#b411c6", "#e84ece"}},
		{"random luminosity", New().Luminosity(Random).Seed(13), []string{"#474747", "#77931a", "#60ea3a", "#74a548"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				if got := tt.rc.Hex(); got != want {
					t.Errorf("draw %d = %s, want %s", i, got, want)
				}
			}
		})
	}
}

func TestRedHueWrapsIntoRange(t *testing.T) {
	rc := New().Hue(Red).Seed(11)
	want := []HSV{{14, 88, 64}, {343, 62, 81}, {6, 62, 98}, {10, 92, 57}}
	for i, w := range want {
		if got := rc.HSV(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}

	rc = New().Hue(Red)
	for i := 0; i < 1000; i++ {
		c := rc.HSV()
		if c.H < 0 || c.H >= 360 {
			t.Fatalf("hue %d out of [0, 360)", c.H)
		}
		if c.H > 18 && c.H < 334 {
			t.Fatalf("hue %d outside red", c.H)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New().SeedString("A random seed")
	b := New().Seed(xxhash.Sum64String("A random seed"))
	for i := 0; i < 20; i++ {
		if x, y := a.Hex(), b.Hex(); x != y {
			t.Fatalf("draw %d: %s != %s", i, x, y)
		}
	}
}

func TestReseedRestartsSequence(t *testing.T) {
	rc := New().Seed(42)
	first := []string{rc.Hex(), rc.Hex(), rc.Hex()}
	rc.Seed(42)
	for i, want := range first {
		if got := rc.Hex(); got != want {
			t.Errorf("draw %d after reseed = %s, want %s", i, got, want)
		}
	}
}

func TestSuccessiveColorsDiffer(t *testing.T) {
	rc := New()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[rc.RGBString()] = true
	}
	if len(seen) < 2 {
		t.Errorf("20 draws produced %d distinct colors", len(seen))
	}
}

func TestMonochromeHue(t *testing.T) {
	rc := New().Hue(Monochrome).Seed(3)
	want := []HSV{{0, 46, 1}, {0, 61, 22}, {0, 49, 95}, {0, 11, 46}}
	for i, w := range want {
		if got := rc.HSV(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestGeneratedRanges(t *testing.T) {
	luminosities := []*Luminosity{nil}
	for _, l := range []Luminosity{Random, Bright, Light, Dark} {
		luminosities = append(luminosities, &l)
	}
	d := DefaultDictionary()

	for _, g := range append([]Gamut{-1}, gamuts[:]...) {
		for _, l := range luminosities {
			rc := New().Seed(1)
			name := "any"
			if g >= 0 {
				rc.Hue(g)
				name = g.String()
			}
			if l != nil {
				rc.Luminosity(*l)
				name += "/" + l.String()
			}

			t.Run(name, func(t *testing.T) {
				for i := 0; i < 500; i++ {
					c := rc.HSV()
					if c.H < 0 || c.H >= 360 || c.S < 0 || c.S > 100 || c.V < 0 || c.V > 100 {
						t.Fatalf("draw %d out of range: %v", i, c)
					}
					// red's range includes 0, which the dictionary files under monochrome
					if g >= 0 && c.H != 0 && d.CategoryForHue(c.H).Gamut() != g {
						t.Fatalf("draw %d hue %d not in %s", i, c.H, g)
					}
					if l == nil || *l != Random {
						if bMin := d.MinimumBrightness(c.H, c.S); c.V < bMin {
							t.Fatalf("draw %d brightness %d below floor %d", i, c.V, bMin)
						}
					}
				}
			})
		}
	}
}

func TestDarkBrightnessCapped(t *testing.T) {
	categories := defaultCategories()
	categories[Blue] = mustCategory(Blue, [2]int{179, 257}, []Bound{{20, 95}, {100, 95}})
	d, err := NewDictionary(categories...)
	if err != nil {
		t.Fatal(err)
	}

	rc := New().Hue(Blue).Luminosity(Dark).Dictionary(d).Seed(2)
	for i := 0; i < 500; i++ {
		if c := rc.HSV(); c.V < 95 || c.V > 100 {
			t.Fatalf("brightness %d outside [95, 100]", c.V)
		}
	}
}

func TestUnconstrainedHueIsUniform(t *testing.T) {
	const (
		draws   = 72000
		buckets = 12
	)
	rc := New().Seed(2024)
	var counts [buckets]int
	for i := 0; i < draws; i++ {
		h := rc.HSV().H
		if h == 360 {
			t.Fatal("hue 360 drawn")
		}
		counts[h*buckets/360]++
	}

	expected := float64(draws) / buckets
	chi := 0.0
	for _, n := range counts {
		d := float64(n) - expected
		chi += d * d / expected
	}
	// 11 degrees of freedom, p = 0.001
	if chi > 31.26 {
		t.Errorf("chi-square %.2f for %v", chi, counts)
	}
}

func TestRandomWithin(t *testing.T) {
	rc := New().Seed(1)
	tests := []struct {
		lo, hi         int
		wantLo, wantHi int
	}{
		{10, 20, 10, 19},
		{20, 10, 10, 19},
		{5, 5, 5, 5},
		{-26, 19, -26, 18},
	}

	for _, tt := range tests {
		seen := map[int]bool{}
		for i := 0; i < 2000; i++ {
			v := rc.randomWithin(tt.lo, tt.hi)
			if v < tt.wantLo || v > tt.wantHi {
				t.Fatalf("randomWithin(%d, %d) = %d", tt.lo, tt.hi, v)
			}
			seen[v] = true
		}
		if len(seen) != tt.wantHi-tt.wantLo+1 {
			t.Errorf("randomWithin(%d, %d) covered %d values", tt.lo, tt.hi, len(seen))
		}
	}
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		name string
		rc   *RandomColor
		want string
	}{
		{"default", New().Seed(42).Hue(Blue).Luminosity(Light), ", 1)"},
		{"below one", New().Seed(42).Hue(Blue).Luminosity(Light).Alpha(0.5), ", 0.5)"},
		{"one is ignored", New().Seed(42).Hue(Blue).Luminosity(Light).Alpha(0.5).Alpha(1.0), ", 0.5)"},
		{"above one is ignored", New().Seed(42).Hue(Blue).Luminosity(Light).Alpha(0.25).Alpha(3), ", 0.25)"},
		{"negative clamps", New().Seed(42).Hue(Blue).Luminosity(Light).Alpha(-0.5), ", 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rc.RGBAString(); !strings.HasSuffix(got, tt.want) {
				t.Errorf("RGBAString() = %q, want suffix %q", got, tt.want)
			}
		})
	}
}

func TestRandomAlpha(t *testing.T) {
	rc := New().Seed(42).RandomAlpha()
	seen := map[float64]bool{}
	for i := 0; i < 10; i++ {
		a := rc.RGBAFloat()[3]
		if a < 0 || a >= 1 {
			t.Fatalf("alpha %v outside [0, 1)", a)
		}
		seen[a] = true
	}
	if len(seen) < 2 {
		t.Error("random alpha did not vary")
	}

	// drawing alpha does not advance the seeded sequence
	a := New().Seed(42).RandomAlpha()
	b := New().Seed(42)
	for i := 0; i < 5; i++ {
		a.RGBAString()
		b.Hex()
		if x, y := a.Hex(), b.Hex(); x != y {
			t.Fatalf("draw %d: %s != %s", i, x, y)
		}
	}
}

func TestAnyHue(t *testing.T) {
	a := New().Hue(Green).AnyHue().Seed(7)
	b := New().Seed(7)
	if x, y := a.Hex(), b.Hex(); x != y {
		t.Errorf("AnyHue: %s != %s", x, y)
	}
}

func TestCustomDictionary(t *testing.T) {
	categories := defaultCategories()
	// a flat blue floor pins every blue brightness to at least 90
	categories[Blue] = mustCategory(Blue, [2]int{179, 257}, []Bound{{20, 90}, {100, 90}})
	d, err := NewDictionary(categories...)
	if err != nil {
		t.Fatal(err)
	}

	rc := New().Hue(Blue).Dictionary(d)
	for i := 0; i < 200; i++ {
		if c := rc.HSV(); c.V < 90 {
			t.Fatalf("brightness %d below custom floor", c.V)
		}
	}
}
