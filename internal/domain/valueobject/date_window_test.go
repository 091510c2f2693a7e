package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

func TestDateWindow_Contains(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skip("time zone database unavailable")
	}

	w := valueobject.CalendarMonth(time.Date(2024, time.March, 10, 9, 0, 0, 0, chicago))

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"first day stored as UTC midnight", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), true},
		{"last day stored as UTC midnight", time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), true},
		{"day before", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), false},
		{"day after", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), false},
		{"zero time", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.t))
		})
	}
}
