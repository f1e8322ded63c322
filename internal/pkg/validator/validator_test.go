package validator

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd", "jane@co.com", "o'brien@co.com", "a@CO.com", "x_y-z@mail.example.org"}
	invalid := []string{
		"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", "",
		"Jane <jane@co.com>", " jane@co.com", "jane@co.c", "jane@-co.com", "jane@co..com", "a b@co.com",
	}
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

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"a@CO.com":             "a@co.com",
		"Jane.Roe@Mail.CO.com": "Jane.Roe@mail.co.com",
		"o'brien@co.com":       "o'brien@co.com",
	}
	for in, want := range cases {
		got, ok := NormalizeEmail(in)
		if !ok || got != want {
			t.Errorf("NormalizeEmail(%q) = %q, %v, want %q, true", in, got, ok, want)
		}
	}

	if got, ok := NormalizeEmail("not-an-email"); ok {
		t.Errorf("NormalizeEmail(%q) = %q, true, want false", "not-an-email", got)
	}
}

func TestIsDateFormat(t *testing.T) {
	// Shape only: impossible calendar dates still pass.
	valid := []string{"2026-02-23", "2000-12-31", "2024-02-30", "2024-13-99", "0000-00-00"}
	invalid := []string{"2024-1-01", "24-01-01", "2024/01/01", "2024-01-01T00:00:00Z", " 2024-01-01", "2024-01-011", "", "abcd-ef-gh"}
	for _, s := range valid {
		if !IsDateFormat(s) {
			t.Errorf("IsDateFormat(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsDateFormat(s) {
			t.Errorf("IsDateFormat(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors_Messages(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "value is not a valid email address"},
		{Field: "date", Message: "bad"},
		{Message: "JSON decode error"},
	}

	got := errs.Messages()
	want := []string{
		"email: value is not a valid email address",
		"date: bad",
		"JSON decode error",
	}
	if len(got) != len(want) {
		t.Fatalf("Messages() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Messages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if errs.Error() != "email: value is not a valid email address; date: bad; JSON decode error" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
