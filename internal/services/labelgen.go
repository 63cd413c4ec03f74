package services

import (
	"fmt"
	"time"
)

// GenerateLotLabel builds the lot tag from the reception timestamp, e.g.
// "LOTE 20250817-1432". Minute precision keeps same-day lots distinct.
func GenerateLotLabel(receivedAt time.Time) string {
	return fmt.Sprintf("LOTE %s", receivedAt.Format("20060102-1504"))
}

// GenerateSerialLabels builds one serial per physical unit, day-mon-year plus
// a 1-based position, e.g. "170820253". These go on the printed stickers.
func GenerateSerialLabels(receivedAt time.Time, total int) []string {
	prefix := receivedAt.Format("02012006")
	labels := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		labels = append(labels, fmt.Sprintf("%s%d", prefix, i))
	}
	return labels
}
