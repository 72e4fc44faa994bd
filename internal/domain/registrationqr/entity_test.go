package registrationqr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationQRIsValid(t *testing.T) {
	tests := []struct {
		name     string
		isActive bool
		expires  time.Time
		want     bool
	}{
		{"active and unexpired", true, time.Now().Add(time.Hour), true},
		{"active but expired", true, time.Now().Add(-time.Minute), false},
		{"deactivated before expiry", false, time.Now().Add(time.Hour), false},
		{"deactivated and expired", false, time.Now().Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr := RegistrationQR{IsActive: tt.isActive, ExpiresAt: tt.expires}
			assert.Equal(t, tt.want, qr.IsValid())
		})
	}
}
