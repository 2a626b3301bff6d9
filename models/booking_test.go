package models

import "testing"

func TestBookingStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		wantErr bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, false},
		{"pending to canceled", StatusPending, StatusCanceled, false},
		{"pending to completed skips confirmation", StatusPending, StatusCompleted, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"confirmed to canceled", StatusConfirmed, StatusCanceled, false},
		{"confirmed back to pending", StatusConfirmed, StatusPending, true},
		{"completed is terminal", StatusCompleted, StatusCanceled, true},
		{"canceled is terminal", StatusCanceled, StatusConfirmed, true},
		{"completed cannot repeat", StatusCompleted, StatusCompleted, true},
		{"unknown status", BookingStatus("archived"), StatusConfirmed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CanTransition(tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("CanTransition(%s -> %s) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}
