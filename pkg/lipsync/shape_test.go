package lipsync

import (
	"slices"
	"testing"

	"github.com/biolimbo/lip-sync-engine/pkg/ranges"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"A", ShapeA, false},
		{"x", ShapeX, false},
		{"H", ShapeH, false},
		{"I", 0, true},
		{"", 0, true},
		{"AB", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShape_Text(t *testing.T) {
	for sh := ShapeA; sh < shapeCount; sh++ {
		b, err := sh.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", sh, err)
		}
		var back Shape
		if err := back.UnmarshalText(b); err != nil || back != sh {
			t.Fatalf("UnmarshalText(%q) = %v, %v", b, back, err)
		}
	}
	if _, err := shapeCount.MarshalText(); err == nil {
		t.Fatal("MarshalText of invalid shape should fail")
	}
}

func TestShapeSet(t *testing.T) {
	basic := BasicShapes()
	if got := basic.String(); got != "ABCDEF" {
		t.Fatalf("BasicShapes = %q, want ABCDEF", got)
	}

	ext, err := ParseShapeSet("XGH")
	if err != nil {
		t.Fatal(err)
	}
	want := []Shape{ShapeA, ShapeB, ShapeC, ShapeD, ShapeE, ShapeF, ShapeX, ShapeG, ShapeH}
	if got := ranges.Collect(ext.Shapes()); !slices.Equal(got, want) {
		t.Fatalf("Shapes = %v, want %v", got, want)
	}

	if _, err := ParseShapeSet("GZ"); err == nil {
		t.Fatal("ParseShapeSet(GZ) should fail")
	}
	// The basic set is unaffected by extending a derived one.
	if basic.Has(ShapeX) {
		t.Fatal("BasicShapes gained X")
	}
}

func TestShapeSet_Convert(t *testing.T) {
	basic := BasicShapes()
	full, _ := ParseShapeSet("GHX")
	tests := []struct {
		set  ShapeSet
		in   Shape
		want Shape
	}{
		{basic, ShapeG, ShapeB},
		{basic, ShapeH, ShapeC},
		{basic, ShapeX, ShapeA},
		{basic, ShapeD, ShapeD},
		{full, ShapeG, ShapeG},
		{full, ShapeX, ShapeX},
	}
	for _, tt := range tests {
		if got := tt.set.Convert(tt.in); got != tt.want {
			t.Errorf("%v.Convert(%v) = %v, want %v", tt.set, tt.in, got, tt.want)
		}
	}
}

func TestShapeFor(t *testing.T) {
	tests := []struct {
		p    Phone
		want Shape
	}{
		{M, ShapeA},
		{AA, ShapeD},
		{EH, ShapeC},
		{AO, ShapeE},
		{UW, ShapeF},
		{V, ShapeG},
		{L, ShapeH},
		{T, ShapeB},
		{Noise, ShapeX},
	}
	for _, tt := range tests {
		if got := ShapeFor(tt.p); got != tt.want {
			t.Errorf("ShapeFor(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	p, err := ParsePhone("Schwa")
	if err != nil || p != Schwa {
		t.Fatalf("ParsePhone(Schwa) = %v, %v", p, err)
	}
	if _, err := ParsePhone("Unknown"); err == nil {
		t.Fatal("ParsePhone(Unknown) should fail")
	}
	if !AA.IsVowel() || M.IsVowel() {
		t.Fatal("IsVowel mismatch")
	}
	if Noise.IsSpeech() || !W.IsSpeech() {
		t.Fatal("IsSpeech mismatch")
	}
}

func TestDialogPhones(t *testing.T) {
	got := dialogPhones([]string{"hello", "show"})
	want := []Phone{HH, EH, L, OW, SH, OW}
	if !slices.Equal(got, want) {
		t.Fatalf("dialogPhones = %v, want %v", got, want)
	}
}
