package vss

import (
	"math"
	"testing"
	"time"
)

func TestTimeoutMillisClampsToRepresentableRange(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want uint32
	}{
		{"negative", -time.Second, 0},
		{"zero", 0, 0},
		{"typical", 180 * time.Second, 180000},
		{"sub-millisecond", 500 * time.Microsecond, 0},
		{"overflow", time.Duration(math.MaxInt64), math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeoutMillis(tt.d); got != tt.want {
				t.Fatalf("timeoutMillis(%v) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
}
