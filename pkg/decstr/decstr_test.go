package decstr

import "testing"

func TestIsValidIntegral(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"123", true},
		{"-123", true},
		{"-0", true},
		{"", false},
		{"-", false},
		{"01", false},
		{"-01", false},
		{"12a3", false},
		{"1 2", false},
		{"+5", false},
	}
	for _, tt := range tests {
		if got := IsValidIntegral(tt.in); got != tt.want {
			t.Errorf("IsValidIntegral(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGe(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0", "0", true},
		{"123", "123", true},
		{"1234", "999", true},
		{"999", "1234", false},
		{"500", "499", true},
		{"499", "500", false},
	}
	for _, tt := range tests {
		if got := Ge(tt.a, tt.b); got != tt.want {
			t.Errorf("Ge(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"0", "0", "0"},
		{"1", "1", "2"},
		{"999", "1", "1000"},
		{"123456789012345678901234567890", "98765432109876543210987654321", "222222221122222222112222222211"},
	}
	for _, tt := range tests {
		if got := Add(tt.a, tt.b); got != tt.want {
			t.Errorf("Add(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"5", "3", "2"},
		{"1000", "1", "999"},
		{"123", "123", "0"},
	}
	for _, tt := range tests {
		got, err := Sub(tt.a, tt.b)
		if err != nil {
			t.Fatalf("Sub(%q, %q) returned error: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("Sub(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := Sub("3", "5"); err == nil {
		t.Error("Sub(3, 5) should fail with underflow")
	}
}

func TestMul(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"0", "12345", "0"},
		{"1", "12345", "12345"},
		{"123", "456", "56088"},
		{"99999", "99999", "9999800001"},
	}
	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivBySmall(t *testing.T) {
	tests := []struct {
		a        string
		k        uint64
		wantQ    string
		wantRem  uint64
	}{
		{"65550", 3, "21850", 0},
		{"21850", 4, "5462", 2},
		{"0", 7, "0", 0},
		{"100", 10, "10", 0},
	}
	for _, tt := range tests {
		q, rem, err := DivBySmall(tt.a, tt.k)
		if err != nil {
			t.Fatalf("DivBySmall(%q, %d) returned error: %v", tt.a, tt.k, err)
		}
		if q != tt.wantQ || rem != tt.wantRem {
			t.Errorf("DivBySmall(%q, %d) = (%q, %d), want (%q, %d)", tt.a, tt.k, q, rem, tt.wantQ, tt.wantRem)
		}
	}

	if _, _, err := DivBySmall("10", 0); err == nil {
		t.Error("DivBySmall(10, 0) should fail with division by zero")
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b       string
		wantQ      string
		wantRem    string
	}{
		{"65550", "3", "21850", "0"},
		{"21850", "4", "5462", "2"},
		{"5", "10", "0", "5"},
		{"0", "5", "0", "0"},
		{"100000", "1", "100000", "0"},
	}
	for _, tt := range tests {
		q, rem, err := Div(tt.a, tt.b)
		if err != nil {
			t.Fatalf("Div(%q, %q) returned error: %v", tt.a, tt.b, err)
		}
		if q != tt.wantQ || rem != tt.wantRem {
			t.Errorf("Div(%q, %q) = (%q, %q), want (%q, %q)", tt.a, tt.b, q, rem, tt.wantQ, tt.wantRem)
		}
	}

	if _, _, err := Div("10", "0"); err == nil {
		t.Error("Div(10, 0) should fail with division by zero")
	}
}
