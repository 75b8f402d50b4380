package life

import (
	"image/color"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	a, b := Color{10, 20, 30}, Color{200, 100, 0}
	if got := Lerp(a, b, 0); got != a {
		t.Fatalf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Fatalf("Lerp(t=1) = %v, want %v", got, b)
	}
	if got := Lerp(Color{0, 0, 0}, Color{100, 200, 50}, 0.5); got != (Color{50, 100, 25}) {
		t.Fatalf("Lerp midpoint = %v", got)
	}
}

func TestLerpRoundsHalfUp(t *testing.T) {
	if got := Lerp(Color{0, 0, 0}, Color{1, 3, 5}, 0.5); got != (Color{1, 2, 3}) {
		t.Fatalf("Lerp halves = %v, want {1 2 3}", got)
	}
}

func TestLerpSaturatesOutsideUnitInterval(t *testing.T) {
	if got := Lerp(Color{0, 100, 255}, Color{255, 200, 0}, 2); got != (Color{255, 255, 0}) {
		t.Fatalf("Lerp(t=2) = %v", got)
	}
	if got := Lerp(Color{0, 100, 255}, Color{255, 200, 0}, -1); got != (Color{0, 0, 255}) {
		t.Fatalf("Lerp(t=-1) = %v", got)
	}
}

func TestAgeToColor(t *testing.T) {
	cases := []struct {
		age  uint32
		want Color
	}{
		{1, Cyan},
		{2, Color{0, 241, 191}},
		{5, Green},
		{6, Green},
		{10, Color{113, 224, 0}},
		{15, Yellow},
		{16, Yellow},
		{30, Orange},
		{31, Orange},
		{46, Color{255, 90, 10}},
		{61, Red},
		{62, Red},
		{1000, Red},
	}
	for _, tc := range cases {
		got, ok := AgeToColor(tc.age)
		if !ok {
			t.Fatalf("age %d reported no color", tc.age)
		}
		if got != tc.want {
			t.Fatalf("AgeToColor(%d) = %v, want %v", tc.age, got, tc.want)
		}
	}
}

func TestAgeToColorDeadCell(t *testing.T) {
	if _, ok := AgeToColor(0); ok {
		t.Fatal("dead cell must not be colored")
	}
}

func TestAgeToColorReturnsCopies(t *testing.T) {
	c, _ := AgeToColor(1)
	c.R, c.G, c.B = 1, 2, 3
	again, _ := AgeToColor(1)
	if again != (Color{0, 255, 255}) {
		t.Fatalf("palette changed after mutating a result: %v", again)
	}
}

func TestColorImplementsColorModel(t *testing.T) {
	got := color.RGBAModel.Convert(Orange).(color.RGBA)
	want := color.RGBA{R: 255, G: 140, B: 0, A: 255}
	if got != want {
		t.Fatalf("RGBA conversion = %v, want %v", got, want)
	}
}
