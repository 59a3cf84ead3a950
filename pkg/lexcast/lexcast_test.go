package lexcast_test

import (
	"errors"
	"fmt"
	"math"
	"net/netip"
	"strconv"
	"testing"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/lexcast"
)

func TestParse_Int(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"-7", -7, false},
		{"+3", 3, false},
		{"0", 0, false},
		{"42x", 0, true},
		{"", 0, true},
		{" 42", 0, true},
		{"42 ", 0, true},
		{"4.2", 0, true},
		{"0x10", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := lexcast.Parse[int](tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse[int](%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse[int](%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_FloatLiterals(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0x1p4", 16},
		{"-Inf", math.Inf(-1)},
		{"infinity", math.Inf(1)},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		got, err := lexcast.Parse[float64](tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Parse[float64](%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if f, err := lexcast.Parse[float64]("NaN"); err != nil || !math.IsNaN(f) {
		t.Errorf("Parse[float64](\"NaN\") = %v, %v", f, err)
	}
	if _, err := lexcast.Parse[float64]("1_000"); err == nil {
		t.Error("Parse[float64](\"1_000\") should fail without a base prefix")
	}
}

func TestParse_ErrorDetails(t *testing.T) {
	_, err := lexcast.Parse[int8]("300")
	if !errors.Is(err, lexcast.ErrConversion) {
		t.Fatalf("error %v does not match ErrConversion", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("error %v does not match strconv.ErrRange", err)
	}
	var ce *lexcast.Error
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not *lexcast.Error", err)
	}
	if ce.Input != "300" || ce.Target != "int8" {
		t.Fatalf("Error = %+v", ce)
	}

	_, err = lexcast.Parse[uint]("-1")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("Parse[uint](-1) error = %v, want ErrSyntax", err)
	}
}

func TestParse_String(t *testing.T) {
	for _, in := range []string{"42", "", "  spaced  ", "42x"} {
		got, err := lexcast.Parse[string](in)
		if err != nil || got != in {
			t.Fatalf("Parse[string](%q) = %q, %v", in, got, err)
		}
	}
	got, err := lexcast.ParseBytes[string]([]byte("abc"))
	if err != nil || got != "abc" {
		t.Fatalf("ParseBytes[string] = %q, %v", got, err)
	}
}

func TestParse_Other(t *testing.T) {
	if v, err := lexcast.Parse[bool]("true"); err != nil || !v {
		t.Fatalf("Parse[bool](true) = %v, %v", v, err)
	}
	if _, err := lexcast.Parse[bool]("yes"); err == nil {
		t.Fatal("Parse[bool](yes) should fail")
	}
	if v, err := lexcast.Parse[float64]("2.5"); err != nil || v != 2.5 {
		t.Fatalf("Parse[float64](2.5) = %v, %v", v, err)
	}
	if _, err := lexcast.Parse[float64]("2.5.1"); err == nil {
		t.Fatal("Parse[float64](2.5.1) should fail")
	}
	if v, err := lexcast.Parse[uint16]("65535"); err != nil || v != math.MaxUint16 {
		t.Fatalf("Parse[uint16] = %v, %v", v, err)
	}
	if v, err := lexcast.ParseBytes[int32]([]byte("-12")); err != nil || v != -12 {
		t.Fatalf("ParseBytes[int32] = %v, %v", v, err)
	}
}

func TestParseText(t *testing.T) {
	addr, err := lexcast.ParseText[netip.Addr]("10.0.0.1")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if addr.String() != "10.0.0.1" {
		t.Fatalf("addr = %s", addr)
	}
	if _, err := lexcast.ParseText[netip.Addr]("10.0.0.1x"); !errors.Is(err, lexcast.ErrConversion) {
		t.Fatalf("ParseText error = %v, want ErrConversion", err)
	}
}

type celsius float64

func (c celsius) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) + "C" }

type valueErr struct{ code int }

func (e valueErr) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"int", lexcast.Format(42), "42"},
		{"negative", lexcast.Format(int64(-9)), "-9"},
		{"uint8", lexcast.Format(uint8(255)), "255"},
		{"bool", lexcast.Format(false), "false"},
		{"string", lexcast.Format("x y"), "x y"},
		{"bytes", lexcast.Format([]byte("raw")), "raw"},
		{"float", lexcast.Format(0.1), "0.1"},
		{"float32", lexcast.Format(float32(0.1)), "0.1"},
		{"large float", lexcast.Format(1e21), "1e+21"},
		{"stringer", lexcast.Format(celsius(21.5)), "21.5C"},
		{"duration", lexcast.Format(1500 * time.Millisecond), "1.5s"},
		{"error", lexcast.Format(errors.New("boom")), "boom"},
		{"text marshaler", lexcast.Format(netip.MustParseAddr("::1")), "::1"},
		{"struct", lexcast.Format(struct{ A int }{1}), "{1}"},
		{"nil time pointer", lexcast.Format((*time.Time)(nil)), "<nil>"},
		{"nil error pointer", lexcast.Format((*valueErr)(nil)), "<nil>"},
		{"nil error interface", lexcast.Format(error(nil)), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("Format = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormat_FloatRoundTrip(t *testing.T) {
	values := []float64{0, 0.1, 1.0 / 3, -2.5e-10, 123456789.125, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range values {
		s := lexcast.Format(v)
		got, err := lexcast.Parse[float64](s)
		if err != nil {
			t.Fatalf("Parse(Format(%v)) error: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %v -> %q -> %v", v, s, got)
		}
	}
}

func TestCast(t *testing.T) {
	if v, err := lexcast.Cast[int]("42"); err != nil || v != 42 {
		t.Fatalf("Cast[int](\"42\") = %v, %v", v, err)
	}
	if v, err := lexcast.Cast[string](42); err != nil || v != "42" {
		t.Fatalf("Cast[string](42) = %q, %v", v, err)
	}
	if v, err := lexcast.Cast[float64](int16(7)); err != nil || v != 7 {
		t.Fatalf("Cast[float64](int16) = %v, %v", v, err)
	}
	if v, err := lexcast.Cast[int](int(5)); err != nil || v != 5 {
		t.Fatalf("Cast[int](int) = %v, %v", v, err)
	}
	if _, err := lexcast.Cast[int](2.5); !errors.Is(err, lexcast.ErrConversion) {
		t.Fatalf("Cast[int](2.5) error = %v, want ErrConversion", err)
	}
	if v, err := lexcast.Cast[bool]([]byte("1")); err != nil || !v {
		t.Fatalf("Cast[bool]([]byte) = %v, %v", v, err)
	}
}
