package ticket

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-seat-reservation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reservation = &domain.Reservation{
	ID:         uuid.MustParse("3e1c8d5a-7b2f-4a90-8c61-5d4e3f2a1b0c"),
	MovieID:    1,
	MovieTitle: "Dune",
	Row:        3,
	Number:     7,
	UserName:   "Alice",
	CreatedAt:  time.Now(),
}

func TestPayload(t *testing.T) {
	assert.Equal(t,
		"reservation:3e1c8d5a-7b2f-4a90-8c61-5d4e3f2a1b0c;movie:1;seat:3-7;user:Alice",
		Payload(reservation))
}

func TestQRCode(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		wantSize int
	}{
		{name: "explicit size", size: 128, wantSize: 128},
		{name: "default size", size: 0, wantSize: DefaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := QRCode(reservation, tt.size)
			require.NoError(t, err)

			cfg, err := png.DecodeConfig(bytes.NewReader(img))
			require.NoError(t, err)

			assert.Equal(t, tt.wantSize, cfg.Width)
			assert.Equal(t, tt.wantSize, cfg.Height)
		})
	}
}
