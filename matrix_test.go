package ybt

import (
	"math/rand"
	"testing"

	"github.com/BeatGlow/ybt/pixel"
)

func TestYellowBlue(t *testing.T) {
	testCases := []struct {
		color pixel.RGB
		want  pixel.RGB
	}{
		{pixel.RGB{R: 1, G: 0, B: 0}, pixel.RGB{R: 0.5, G: 0.5, B: 0}},
		{pixel.RGB{R: 0, G: 1, B: 0}, pixel.RGB{R: 0.5, G: 0.5, B: 0}},
		{pixel.RGB{R: 0, G: 0, B: 1}, pixel.RGB{R: 0, G: 0, B: 1}},
		{pixel.RGB{R: 1, G: 1, B: 0}, pixel.RGB{R: 1, G: 1, B: 0}},
		{pixel.RGB{R: 1, G: 1, B: 1}, pixel.RGB{R: 1, G: 1, B: 1}},
	}
	for _, test := range testCases {
		t.Run("", func(it *testing.T) {
			if v := YellowBlue.ApplyRGB(test.color); v != test.want {
				it.Errorf("expected %#+v for %#+v, got %#+v", test.want, test.color, v)
			}
		})
	}
}

func TestYellowBlueIdempotent(t *testing.T) {
	img := testRandomImage(16, 16)
	once := YellowBlue.Apply(img)
	twice := YellowBlue.Apply(once)
	for i := range once.Pix {
		if once.Pix[i] != twice.Pix[i] {
			t.Fatalf("sample %d changed on second application: %v != %v", i, once.Pix[i], twice.Pix[i])
		}
	}
}

func TestRedGreen(t *testing.T) {
	testCases := []struct {
		color pixel.RGB
		want  pixel.RGB
	}{
		{pixel.RGB{R: 1, G: 0, B: 0}, pixel.RGB{R: 1, G: 0, B: 0}},
		{pixel.RGB{R: 0, G: 1, B: 0}, pixel.RGB{R: 0, G: 1, B: 0}},
		{pixel.RGB{R: 0, G: 0, B: 1}, pixel.RGB{R: 0.5, G: 0.5, B: 0}},
		{pixel.RGB{R: 0, G: 1, B: 1}, pixel.RGB{R: 0.5, G: 1.5, B: 0}},
	}
	for _, test := range testCases {
		t.Run("", func(it *testing.T) {
			if v := RedGreen.ApplyRGB(test.color); v != test.want {
				it.Errorf("expected %#+v for %#+v, got %#+v", test.want, test.color, v)
			}
		})
	}
}

func TestRedGreenToYellowBlue(t *testing.T) {
	testCases := []struct {
		color pixel.RGB
		want  pixel.RGB
	}{
		{pixel.RGB{R: 1, G: 0, B: 0}, pixel.RGB{R: 0.75, G: 0.75, B: 0}},
		{pixel.RGB{R: 0, G: 1, B: 0}, pixel.RGB{R: 0.25, G: 0.25, B: 1}},
		{pixel.RGB{R: 0, G: 0, B: 1}, pixel.RGB{R: 0, G: 0, B: 0}},
	}
	for _, test := range testCases {
		t.Run("", func(it *testing.T) {
			if v := RedGreenToYellowBlue.ApplyRGB(test.color); v != test.want {
				it.Errorf("expected %#+v for %#+v, got %#+v", test.want, test.color, v)
			}
		})
	}

	t.Run("yellow-blue-axis", func(it *testing.T) {
		for i := 0; i < 64; i++ {
			c := pixel.RGB{R: rand.Float32(), G: rand.Float32(), B: rand.Float32()}
			if v := RedGreenToYellowBlue.ApplyRGB(c); v.R != v.G {
				it.Fatalf("expected equal red and green for %#+v, got %#+v", c, v)
			}
		}
	})
}

func TestApply(t *testing.T) {
	img := testRandomImage(8, 4)
	before := make([]float32, len(img.Pix))
	copy(before, img.Pix)

	out := YellowBlue.Apply(img)
	if out == img {
		t.Fatal("expected a new image")
	}
	if v := out.Bounds(); v != img.Bounds() {
		t.Fatalf("expected bounds %s, got %s", img.Bounds(), v)
	}
	for i := range img.Pix {
		if img.Pix[i] != before[i] {
			t.Fatalf("source sample %d was modified", i)
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if v, want := out.RGBAt(x, y), YellowBlue.ApplyRGB(img.RGBAt(x, y)); v != want {
				t.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, v, want)
			}
		}
	}
}

func TestApplyNoClamp(t *testing.T) {
	img := pixel.NewRGBImage(1, 1)
	img.SetRGB(0, 0, pixel.RGB{R: 1, G: 1, B: 1})

	out := RedGreen.Apply(img)
	if v := out.RGBAt(0, 0); v != (pixel.RGB{R: 1.5, G: 1.5, B: 0}) {
		t.Errorf("expected out of range values to pass through, got %#+v", v)
	}
}

func TestNamed(t *testing.T) {
	testCases := []struct {
		name string
		want ColorMatrix
		ok   bool
	}{
		{"yb", YellowBlue, true},
		{"yellow-blue", YellowBlue, true},
		{"rg", RedGreen, true},
		{"red-green", RedGreen, true},
		{"rgyb", RedGreenToYellowBlue, true},
		{"red-green-yellow-blue", RedGreenToYellowBlue, true},
		{"bogus", ColorMatrix{}, false},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			m, ok := Named(test.name)
			if ok != test.ok {
				it.Fatalf("expected ok to be %v, got %v", test.ok, ok)
			}
			if m != test.want {
				it.Errorf("expected %#+v, got %#+v", test.want, m)
			}
		})
	}
}

func testRandomImage(w, h int) *pixel.RGBImage {
	img := pixel.NewRGBImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = rand.Float32()
	}
	return img
}
