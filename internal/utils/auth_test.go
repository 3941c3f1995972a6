package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Abcdef1!", true},
		{"Sup3r$enha", true},
		{"short!A", false},
		{"alllowercase1!", false},
		{"NoSpecialChar1", false},
		{"", false},
	}
	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.ok && err != nil {
			t.Fatalf("ValidatePassword(%q) = %v, want nil", tc.password, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ValidatePassword(%q) = nil, want error", tc.password)
		}
	}
}
