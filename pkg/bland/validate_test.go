package bland

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	valid := []struct{ in, want string }{
		{"+12025550101", "+12025550101"},
		{"+1 (202) 555-0101", "+12025550101"},
		{"+44 20 7946 0958", "+442079460958"},
		{"+1202555010", "+1202555010"},           // 10 digits, shortest accepted
		{"+120255501011111", "+120255501011111"}, // 15 digits, longest accepted
	}
	for _, tc := range valid {
		t.Run(tc.in, func(t *testing.T) {
			got, err := normalizePhone(tc.in)
			if err != nil {
				t.Fatalf("normalizePhone(%q) = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}

	invalid := []string{
		"12025550101",       // no country prefix
		"+120255501",        // 9 digits, too short
		"+1202555010111111", // 16 digits, too long
		"",
		"call me maybe",
	}
	for _, in := range invalid {
		t.Run("reject "+in, func(t *testing.T) {
			_, err := normalizePhone(in)
			var phoneErr *InvalidPhoneError
			if !errors.As(err, &phoneErr) {
				t.Fatalf("normalizePhone(%q) = %v, want InvalidPhoneError", in, err)
			}
		})
	}
}

func TestNormalizeToolMethod(t *testing.T) {
	cases := []struct {
		in, want string
		ok       bool
	}{
		{"GET", "GET", true},
		{"post", "POST", true},
		{"Put", "PUT", true},
		{"delete", "DELETE", true},
		{"PATCH", "", false},
		{"patch", "", false},
		{"FETCH", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := normalizeToolMethod(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.want {
					t.Errorf("got %q, want %q", got, tc.want)
				}
				return
			}
			var enumErr *InvalidEnumError
			if !errors.As(err, &enumErr) {
				t.Fatalf("err = %v, want InvalidEnumError", err)
			}
		})
	}
}

func TestCheckEnum(t *testing.T) {
	if err := checkEnum("model", "turbo", Models); err != nil {
		t.Errorf("turbo should be allowed: %v", err)
	}
	if err := checkEnum("model", "", Models); err != nil {
		t.Errorf("empty value should pass: %v", err)
	}
	err := checkEnum("model", "ultra", Models)
	var enumErr *InvalidEnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("err = %v, want InvalidEnumError", err)
	}
	if enumErr.Field != "model" || enumErr.Value != "ultra" {
		t.Errorf("enumErr = %+v", enumErr)
	}
}

func TestCheckRange(t *testing.T) {
	if err := checkRange("temperature", 0.7, 0, 1); err != nil {
		t.Errorf("0.7 in [0,1]: %v", err)
	}
	if err := checkRange("temperature", 0, 0, 1); err != nil {
		t.Errorf("zero value must pass: %v", err)
	}
	err := checkRange("temperature", 1.5, 0, 1)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("err = %v, want RangeError", err)
	}
	if err := checkRange("speed", 2.5, 0.5, 2.0); !errors.As(err, &rangeErr) {
		t.Errorf("speed 2.5 should fail: %v", err)
	}
}
