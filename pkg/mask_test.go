package pkg

import "testing"

func TestMaskCardNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4111111111111111", "****-****-****-1111"},
		{"4111 1111 1111 1111", "****-****-****-1111"},
		{"123", "****"},
		{"", "****"},
	}
	for _, tc := range cases {
		if got := MaskCardNumber(tc.in); got != tc.want {
			t.Fatalf("MaskCardNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskCVV(t *testing.T) {
	if got := MaskCVV("1234"); got != "***" {
		t.Fatalf("MaskCVV = %q, want ***", got)
	}
}

func TestMaskCPF(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12345678909", "***.***.***-09"},
		{"123.456.789-09", "***.***.***-09"},
		{"", "***.***.***-**"},
	}
	for _, tc := range cases {
		if got := MaskCPF(tc.in); got != tc.want {
			t.Fatalf("MaskCPF(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskEmail(t *testing.T) {
	if got := MaskEmail("ana@example.com"); got != "a***@example.com" {
		t.Fatalf("MaskEmail = %q", got)
	}
	if got := MaskEmail("invalid"); got != "***" {
		t.Fatalf("MaskEmail(invalid) = %q", got)
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("123.456-78a9"); got != "123456789" {
		t.Fatalf("DigitsOnly = %q", got)
	}
}
