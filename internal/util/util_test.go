package util

import (
	"testing"
	"time"
)

func TestIsValidChileanPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phone    string
		expected bool
	}{
		{name: "full international format", phone: "+56 9 1234 5678", expected: true},
		{name: "compact international", phone: "56912345678", expected: true},
		{name: "national with spaces", phone: "9 1234 5678", expected: true},
		{name: "compact national", phone: "912345678", expected: true},
		{name: "landline prefix", phone: "+56 2 1234 5678", expected: false},
		{name: "too short", phone: "9 1234 567", expected: false},
		{name: "too long", phone: "9 1234 56789", expected: false},
		{name: "letters", phone: "nueve doce", expected: false},
		{name: "empty", phone: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValidChileanPhone(tt.phone); got != tt.expected {
				t.Fatalf("IsValidChileanPhone(%q) = %v, want %v", tt.phone, got, tt.expected)
			}
		})
	}
}

func TestFormatRut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rut      string
		expected string
	}{
		{name: "plain digits", rut: "111111111", expected: "11.111.111-1"},
		{name: "hyphenated", rut: "11111111-1", expected: "11.111.111-1"},
		{name: "already canonical", rut: "11.111.111-1", expected: "11.111.111-1"},
		{name: "seven digit body", rut: "7654321-6", expected: "7.654.321-6"},
		{name: "lowercase check digit", rut: "10001167-k", expected: "10.001.167-K"},
		{name: "empty", rut: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatRut(tt.rut); got != tt.expected {
				t.Fatalf("FormatRut(%q) = %q, want %q", tt.rut, got, tt.expected)
			}
		})
	}
}

func TestIsValidRut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rut      string
		expected bool
	}{
		{name: "valid repeated ones", rut: "11.111.111-1", expected: true},
		{name: "valid classic sequence", rut: "12345678-5", expected: true},
		{name: "valid without punctuation", rut: "123456785", expected: true},
		{name: "wrong check digit", rut: "12345678-9", expected: false},
		{name: "too short", rut: "1", expected: false},
		{name: "empty", rut: "", expected: false},
		{name: "letters in body", rut: "12a45678-5", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValidRut(tt.rut); got != tt.expected {
				t.Fatalf("IsValidRut(%q) = %v, want %v", tt.rut, got, tt.expected)
			}
		})
	}
}

func TestFormatInstagram(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handle   string
		expected string
	}{
		{name: "bare handle", handle: "daztheline", expected: "@daztheline"},
		{name: "already prefixed", handle: "@daztheline", expected: "@daztheline"},
		{name: "surrounding spaces", handle: "  daztheline  ", expected: "@daztheline"},
		{name: "empty stays empty", handle: "", expected: ""},
		{name: "spaces only", handle: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatInstagram(tt.handle); got != tt.expected {
				t.Fatalf("FormatInstagram(%q) = %q, want %q", tt.handle, got, tt.expected)
			}
		})
	}
}

func TestFormatCLP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{name: "zero", amount: 0, expected: "$0"},
		{name: "under a thousand", amount: 999, expected: "$999"},
		{name: "thousands", amount: 15000, expected: "$15.000"},
		{name: "millions", amount: 1234567, expected: "$1.234.567"},
		{name: "negative balance", amount: -5000, expected: "-$5.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCLP(tt.amount); got != tt.expected {
				t.Fatalf("FormatCLP(%d) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatFecha(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.March, 9, 14, 5, 0, 0, time.UTC)
	if got := FormatFecha(ts); got != "09/03/2025" {
		t.Fatalf("FormatFecha = %q, want %q", got, "09/03/2025")
	}
	if got := FormatFechaHora(ts); got != "09/03/2025 14:05" {
		t.Fatalf("FormatFechaHora = %q, want %q", got, "09/03/2025 14:05")
	}
}

func TestBancoAndTipoCuentaLists(t *testing.T) {
	t.Parallel()

	if !IsValidBanco("Banco Estado") {
		t.Fatal("Banco Estado should be accepted")
	}
	if IsValidBanco("Banco Inventado") {
		t.Fatal("unknown bank should be rejected")
	}
	if !IsValidTipoCuenta("Cuenta RUT") {
		t.Fatal("Cuenta RUT should be accepted")
	}
	if IsValidTipoCuenta("Cuenta Secreta") {
		t.Fatal("unknown account type should be rejected")
	}
}
