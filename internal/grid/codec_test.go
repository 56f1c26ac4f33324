// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"errors"
	"reflect"
	"testing"
)

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParse(t *testing.T) {
	codec := DefaultCodec()

	tests := []struct {
		name string
		text string
		want Grid
	}{
		{
			name: "empty text",
			text: "",
			want: Grid{},
		},
		{
			name: "two records",
			text: "0_0\t1,One\n3_1\t2,Two",
			want: Grid{At(0, 0): "1,One", At(3, 1): "2,Two"},
		},
		{
			name: "last record wins",
			text: "0_0\tA\n0_0\tB",
			want: Grid{At(0, 0): "B"},
		},
		{
			name: "record without value clears earlier record",
			text: "0_0\tA\n0_0",
			want: Grid{},
		},
		{
			name: "explicit empty value is kept",
			text: "2_5\t",
			want: Grid{At(2, 5): ""},
		},
		{
			name: "only the first field is the value",
			text: "1_1\tA\tB",
			want: Grid{At(1, 1): "A"},
		},
		{
			name: "blank records are dropped",
			text: "\n0_0\tA\n\n",
			want: Grid{At(0, 0): "A"},
		},
		{
			name: "empty address is dropped",
			text: "\tA\n1_0\tB",
			want: Grid{At(1, 0): "B"},
		},
		{
			name: "non numeric tokens are dropped",
			text: "a_b\tA\n1_x\tB\n2_2\tC",
			want: Grid{At(2, 2): "C"},
		},
		{
			name: "signed tokens are dropped",
			text: "-1_0\tA\n+1_0\tB\n0_0\tC",
			want: Grid{At(0, 0): "C"},
		},
		{
			name: "wrong token count is dropped",
			text: "1\tA\n1_2_3\tB\n4_4\tC",
			want: Grid{At(4, 4): "C"},
		},
		{
			name: "leading zeros are accepted",
			text: "01_002\tX",
			want: Grid{At(1, 2): "X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codec.Parse(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_RecordPattern(t *testing.T) {
	record, err := Pattern(`\r?\n`, "\n")
	if err != nil {
		t.Fatalf("Pattern failed: %v", err)
	}
	seps := DefaultSeparators()
	seps.Record = record

	codec, err := NewCodec(seps)
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	got := codec.Parse("0_0\tA\r\n1_0\tB\n")
	want := Grid{At(0, 0): "A", At(1, 0): "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
	if v := codec.Stringify(got); v != "0_0\tA\n1_0\tB" {
		t.Errorf("Stringify = %q", v)
	}
}

func TestParse_CustomSeparators(t *testing.T) {
	seps := Separators{
		Record: Literal(";"),
		Field:  Literal("="),
		Index:  Literal(":"),
	}
	g := Parse("1:2=x;0:0=y", seps)
	want := Grid{At(1, 2): "x", At(0, 0): "y"}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("Parse = %v, want %v", g, want)
	}
	if got := Stringify(g, seps); got != "0:0=y;1:2=x" {
		t.Errorf("Stringify = %q, want %q", got, "0:0=y;1:2=x")
	}
}

// =============================================================================
// STRINGIFY TESTS
// =============================================================================

func TestStringify(t *testing.T) {
	codec := DefaultCodec()

	tests := []struct {
		name string
		grid Grid
		want string
	}{
		{"nil grid", nil, ""},
		{"empty grid", Grid{}, ""},
		{"sort example", Grid{At(3, 1): "2,Two", At(0, 0): "1,One"}, "0_0\t1,One\n3_1\t2,Two"},
		{"empty value is a record", Grid{At(0, 0): ""}, "0_0\t"},
		{"invalid address is skipped", Grid{At(-1, 0): "x", At(0, 1): "y"}, "0_1\ty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codec.Stringify(tt.grid); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringify_Deterministic(t *testing.T) {
	codec := DefaultCodec()
	want := codec.Stringify(Grid{
		At(0, 0): "alpha", At(0, 1): "Beta", At(1, 0): "gamma",
		At(2, 2): "", At(7, 3): "delta", At(4, 8): "Epsilon",
	})

	for i := 0; i < 20; i++ {
		g := Grid{}
		// Insert in a different order each round.
		keys := []Address{At(4, 8), At(2, 2), At(0, 1), At(7, 3), At(1, 0), At(0, 0)}
		values := []string{"Epsilon", "", "Beta", "delta", "gamma", "alpha"}
		for j := range keys {
			k := (j + i) % len(keys)
			g[keys[k]] = values[k]
		}
		if got := codec.Stringify(g); got != want {
			t.Fatalf("round %d: Stringify = %q, want %q", i, got, want)
		}
	}
}

func TestRoundTrip_FixedPoint(t *testing.T) {
	codec := DefaultCodec()

	inputs := []string{
		"",
		"0_0\t1,One\n3_1\t2,Two",
		"3_1\t2,Two\n0_0\t1,One",
		"10_0\tA\n1_0\tB\n2_0\tC",
		"0_0\t\n0_1\tx",
		"junk\n0_0\tkeep\nx_y\tdrop",
		"5_5\tÉclair\n5_4\téclair\n5_3\tzebra",
	}

	for _, in := range inputs {
		once := codec.Normalize(in)
		twice := codec.Stringify(codec.Parse(once))
		if once != twice {
			t.Errorf("not a fixed point for %q: %q then %q", in, once, twice)
		}
	}
}

// =============================================================================
// SEPARATOR TESTS
// =============================================================================

func TestSeparators_Validate(t *testing.T) {
	tests := []struct {
		name string
		seps Separators
		want error
	}{
		{"defaults", DefaultSeparators(), nil},
		{"empty field", Separators{Literal("\n"), Literal(""), Literal("_")}, ErrEmptySeparator},
		{"digit index", Separators{Literal("\n"), Literal("\t"), Literal("1")}, ErrDigitSeparator},
		{"duplicate", Separators{Literal("\n"), Literal("_"), Literal("_")}, ErrDuplicateSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seps.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewCodec_RejectsInvalidSeparators(t *testing.T) {
	if _, err := NewCodec(Separators{}); err == nil {
		t.Error("expected error for zero separators")
	}
	if g := Parse("0_0\tA", Separators{}); len(g) != 0 {
		t.Errorf("Parse with invalid separators = %v, want empty", g)
	}
}

func TestSeparators_CheckValue(t *testing.T) {
	seps := DefaultSeparators()

	if err := seps.CheckValue("1,One"); err != nil {
		t.Errorf("CheckValue(plain) = %v", err)
	}
	if err := seps.CheckValue("a_b"); err != nil {
		t.Errorf("index separator inside a value is harmless, got %v", err)
	}
	if err := seps.CheckValue("two\nlines"); !errors.Is(err, ErrSeparatorInValue) {
		t.Errorf("CheckValue(newline) = %v, want ErrSeparatorInValue", err)
	}
	if err := seps.CheckValue("tab\there"); !errors.Is(err, ErrSeparatorInValue) {
		t.Errorf("CheckValue(tab) = %v, want ErrSeparatorInValue", err)
	}
}
