package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     error
	}{
		{name: "valid", password: "Passw0rd", want: nil},
		{name: "valid long with symbols", password: "c0rrect-Horse-battery", want: nil},
		{name: "too short", password: "Pa55wd", want: ErrTooShort},
		{name: "seven chars", password: "Passw0r", want: ErrTooShort},
		{name: "no uppercase", password: "passw0rd", want: ErrMissingClasses},
		{name: "no lowercase", password: "PASSW0RD", want: ErrMissingClasses},
		{name: "no digit", password: "Password", want: ErrMissingClasses},
		{name: "non ascii digit only", password: "Password٣", want: ErrMissingClasses},
		{name: "empty", password: "", want: ErrTooShort},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Validate(tt.password))
		})
	}
}
