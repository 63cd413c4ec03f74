package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLotLabel(t *testing.T) {
	receivedAt := time.Date(2025, 8, 17, 14, 32, 59, 0, time.UTC)
	assert.Equal(t, "LOTE 20250817-1432", GenerateLotLabel(receivedAt))
}

func TestGenerateSerialLabels(t *testing.T) {
	receivedAt := time.Date(2025, 8, 17, 14, 32, 0, 0, time.UTC)

	labels := GenerateSerialLabels(receivedAt, 3)

	assert.Equal(t, []string{"170820251", "170820252", "170820253"}, labels)
}

func TestGenerateSerialLabelsTwoDigitPositions(t *testing.T) {
	receivedAt := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	labels := GenerateSerialLabels(receivedAt, 12)

	assert.Len(t, labels, 12)
	assert.Equal(t, "020120251", labels[0])
	assert.Equal(t, "0201202510", labels[9])
	assert.Equal(t, "0201202512", labels[11])
}

func TestGenerateSerialLabelsZeroTotal(t *testing.T) {
	labels := GenerateSerialLabels(time.Now(), 0)
	assert.Empty(t, labels)
}
