package palette

import (
	stdcolor "image/color"
	"strings"
	"testing"

	"github.com/fogleman/gg"

	"github.com/watzon/randomcolor/color"
)

func TestNewGeneratorErrors(t *testing.T) {
	if _, err := NewGenerator(nil, "", 5); err == nil {
		t.Error("NewGenerator(nil) succeeded")
	}
	if _, err := NewGenerator(color.New(), "", 0); err == nil {
		t.Error("NewGenerator(size 0) succeeded")
	}
}

func TestGenerate(t *testing.T) {
	g, err := NewGenerator(color.New().Hue(color.Blue).Luminosity(color.Light).Seed(42), "Light Blue Palette", 4)
	if err != nil {
		t.Fatal(err)
	}

	p := g.Generate()
	if p.Title != "Light Blue Palette" {
		t.Errorf("Title = %q", p.Title)
	}

	want := []string{"#a7b9f9", "#6f9bed", "#85d5f7", "#c4d9fc"}
	if len(p.Colors) != len(want) || len(p.Labels) != len(want) {
		t.Fatalf("palette has %d colors and %d labels", len(p.Colors), len(p.Labels))
	}
	for i, hex := range want {
		if p.HexCodes[i] != hex || p.Colors[i].Hex() != hex {
			t.Errorf("swatch %d = %s (%s), want %s", i, p.HexCodes[i], p.Colors[i].Hex(), hex)
		}
	}
	if p.Labels[0] != "hsl(227, 88%, 18%)" {
		t.Errorf("Labels[0] = %q", p.Labels[0])
	}

	// the generator keeps advancing the seeded sequence
	next := g.Generate()
	if next.HexCodes[0] == p.HexCodes[0] && next.HexCodes[1] == p.HexCodes[1] {
		t.Errorf("second palette repeated the first: %v", next.HexCodes)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		hue, luminosity, want string
	}{
		{"", "", "Random Palette"},
		{"blue", "", "Blue Palette"},
		{"", "DARK", "Dark Palette"},
		{"pink", "light", "Light Pink Palette"},
	}

	for _, tt := range tests {
		if got := Title(tt.hue, tt.luminosity); got != tt.want {
			t.Errorf("Title(%q, %q) = %q, want %q", tt.hue, tt.luminosity, got, tt.want)
		}
	}
}

func TestToImage(t *testing.T) {
	g, err := NewGenerator(color.New().Seed(7), "Random Palette", 5)
	if err != nil {
		t.Fatal(err)
	}
	p := g.Generate()

	img, err := p.ToImage()
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != imageSize || b.Dy() != imageSize {
		t.Fatalf("image is %dx%d", b.Dx(), b.Dy())
	}

	// sample near the bottom of each bar, away from the text
	barWidth := imageSize / len(p.Colors)
	for i, c := range p.Colors {
		got := stdcolor.RGBAModel.Convert(img.At(i*barWidth+barWidth/2, imageSize-10)).(stdcolor.RGBA)
		if got.R != c.R || got.G != c.G || got.B != c.B {
			t.Errorf("bar %d = %v, want %v", i, got, c)
		}
	}
}

func TestGeneratePaletteImageErrors(t *testing.T) {
	if _, err := GeneratePaletteImage(PaletteImage{}); err == nil {
		t.Error("empty palette succeeded")
	}

	cfg := PaletteImage{
		Colors:       []color.Color{{R: 1}},
		ShowHexCodes: true,
	}
	if _, err := GeneratePaletteImage(cfg); err == nil {
		t.Error("missing hex codes succeeded")
	}
}

func TestManyColorsShrinkFont(t *testing.T) {
	g, err := NewGenerator(color.New().Seed(1), "", 12)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate().ToImage(); err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
}

func TestWrapText(t *testing.T) {
	dc := gg.NewContext(100, 100)

	if got := wrapText(dc, "   ", 100); got != nil {
		t.Errorf("wrapText(blank) = %v", got)
	}

	text := "hsl(227, 88%, 18%)"
	if got := wrapText(dc, text, 1e6); len(got) != 1 || got[0] != text {
		t.Errorf("wide wrap = %q", got)
	}

	got := wrapText(dc, text, 1)
	if len(got) != 3 || strings.Join(got, " ") != text {
		t.Errorf("narrow wrap = %q", got)
	}
}
