package tests

import (
	"bytes"
	"testing"

	"meal-orders/internal/service"

	"github.com/stretchr/testify/assert"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47}

func TestDefaultQRGenerator_EncodesTrackingURL(t *testing.T) {
	generator := &service.DefaultQRGenerator{BaseURL: "https://orders.example.com"}

	png, err := generator.Generate("ORD-20250310-000041")
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature))

	again, err := generator.Generate("ORD-20250310-000041")
	assert.NoError(t, err)
	assert.Equal(t, png, again, "encoding is deterministic for the same order number")
}
