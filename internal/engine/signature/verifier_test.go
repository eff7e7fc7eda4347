package signature

import (
	"testing"
)

func TestCompute(t *testing.T) {
	secret := "secret"
	body := []byte("payload")

	// Calculated using: echo -n "payload" | openssl dgst -sha256 -hmac "secret" -binary | base64
	expected := "uC/LeRrOxXhZuYm0MKgmSIzi5Hn9+SMmvQoug3WkK6Q="

	got := Compute(body, secret)

	if got != expected {
		t.Errorf("Compute() = %v, want %v", got, expected)
	}
}

func TestVerify(t *testing.T) {
	secret := "shpss_test_secret"
	body := []byte(`{"id":12345,"customer":{"first_name":"A"}}`)
	valid := Compute(body, secret)

	tests := []struct {
		name   string
		header string
		body   []byte
		want   bool
	}{
		{"Valid signature", valid, body, true},
		{"Empty header", "", body, false},
		{"Wrong secret digest", Compute(body, "other_secret"), body, false},
		{"Body altered by one byte", valid, []byte(`{"id":12346,"customer":{"first_name":"A"}}`), false},
		{"Hex instead of base64", "deadbeef", body, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verify(tt.header, tt.body, secret); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}
