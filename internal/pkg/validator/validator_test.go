package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidBIN(t *testing.T) {
	valid := []string{"123456789012", "000000000000"}
	invalid := []string{
		"12345678901",   // 11 digits
		"1234567890123", // 13 digits
		"12345678901a",  // non-numeric
		"",
	}
	for _, bin := range valid {
		if !IsValidBIN(bin) {
			t.Errorf("IsValidBIN(%q) = false, want true", bin)
		}
	}
	for _, bin := range invalid {
		if IsValidBIN(bin) {
			t.Errorf("IsValidBIN(%q) = true, want false", bin)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"acme-x7k2p9", "acme", "a-b-c", "org42"}
	invalid := []string{"", "-acme", "acme-", "Acme", "acme--x", "acme x"}
	for _, slug := range valid {
		if !IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = false, want true", slug)
		}
	}
	for _, slug := range invalid {
		if IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = true, want false", slug)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-15"); !ok {
		t.Error("IsValidDate(\"2024-01-15\") = false, want true")
	}
	for _, s := range []string{"15-01-2024", "2024/01/15", "2024-13-01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+77011234567", "87011234567", "7701 123 45 67"}
	invalid := []string{"12345", "notaphone", "+7701123456789012"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}
