package plan

import (
	"testing"

	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

const t0 = int64(1_700_000_000_000)

func TestExpiry_TableTests(t *testing.T) {
	tests := []struct {
		name       string
		planStart  int64
		planMonths int
		want       int64
	}{
		{
			name:       "one month is exactly thirty days",
			planStart:  t0,
			planMonths: 1,
			want:       t0 + 30*DayMillis,
		},
		{
			name:       "three months",
			planStart:  t0,
			planMonths: 3,
			want:       t0 + 90*DayMillis,
		},
		{
			name:       "twelve months is 360 days not a calendar year",
			planStart:  t0,
			planMonths: 12,
			want:       t0 + 360*DayMillis,
		},
		{
			name:       "zero start",
			planStart:  0,
			planMonths: 1,
			want:       2_592_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expiry(tt.planStart, tt.planMonths)
			if got != tt.want {
				t.Errorf("Expiry(%d, %d) = %d, want %d",
					tt.planStart, tt.planMonths, got, tt.want)
			}
		})
	}
}

func TestIsActive_StrictBoundary(t *testing.T) {
	expiry := Expiry(t0, 1)

	tests := []struct {
		name string
		now  int64
		want bool
	}{
		{name: "one ms before expiry", now: expiry - 1, want: true},
		{name: "exactly at expiry", now: expiry, want: false},
		{name: "one ms after expiry", now: expiry + 1, want: false},
		{name: "at plan start", now: t0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsActive(t0, 1, tt.now)
			if got != tt.want {
				t.Errorf("IsActive(%d, 1, %d) = %v, want %v", t0, tt.now, got, tt.want)
			}
		})
	}
}

func TestDaysRemaining_TableTests(t *testing.T) {
	tests := []struct {
		name       string
		planMonths int
		now        int64
		want       int
	}{
		{
			name:       "29 days in, one day left",
			planMonths: 1,
			now:        t0 + 29*DayMillis,
			want:       1,
		},
		{
			name:       "31 days in, one day overdue",
			planMonths: 1,
			now:        t0 + 31*DayMillis,
			want:       -1,
		},
		{
			name:       "partial day rounds up",
			planMonths: 1,
			now:        t0 + 29*DayMillis + 1,
			want:       1,
		},
		{
			name:       "exactly at expiry",
			planMonths: 1,
			now:        t0 + 30*DayMillis,
			want:       0,
		},
		{
			name:       "full plan ahead",
			planMonths: 3,
			now:        t0,
			want:       90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysRemaining(t0, tt.planMonths, tt.now)
			if got != tt.want {
				t.Errorf("DaysRemaining(%d, %d, %d) = %d, want %d",
					t0, tt.planMonths, tt.now, got, tt.want)
			}
		})
	}
}

func TestResolve_TableTests(t *testing.T) {
	tests := []struct {
		name             string
		planStart        int64
		planMonths       int
		additionalMonths int
		now              int64
		wantStart        int64
		wantMonths       int
	}{
		{
			name:             "active plan stacks on current expiry",
			planStart:        t0,
			planMonths:       3,
			additionalMonths: 1,
			now:              t0 + 50*DayMillis,
			wantStart:        t0 + 90*DayMillis,
			wantMonths:       1,
		},
		{
			name:             "expired plan anchors at now without credit",
			planStart:        t0,
			planMonths:       3,
			additionalMonths: 1,
			now:              t0 + 200*DayMillis,
			wantStart:        t0 + 200*DayMillis,
			wantMonths:       1,
		},
		{
			name:             "renewal exactly at expiry anchors at now",
			planStart:        t0,
			planMonths:       1,
			additionalMonths: 6,
			now:              t0 + 30*DayMillis,
			wantStart:        t0 + 30*DayMillis,
			wantMonths:       6,
		},
		{
			name:             "months are replaced not summed",
			planStart:        t0,
			planMonths:       12,
			additionalMonths: 1,
			now:              t0,
			wantStart:        t0 + 360*DayMillis,
			wantMonths:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotMonths := Resolve(tt.planStart, tt.planMonths, tt.additionalMonths, tt.now)
			if gotStart != tt.wantStart || gotMonths != tt.wantMonths {
				t.Errorf("Resolve(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.planStart, tt.planMonths, tt.additionalMonths, tt.now,
					gotStart, gotMonths, tt.wantStart, tt.wantMonths)
			}
		})
	}
}

func TestResolve_NeverShortensAccess(t *testing.T) {
	for _, months := range []int{1, 3, 6, 12} {
		for _, offset := range []int64{0, 10 * DayMillis, 90 * DayMillis, 400 * DayMillis} {
			now := t0 + offset
			currentExpiry := Expiry(t0, 3)
			newStart, newMonths := Resolve(t0, 3, months, now)
			if Expiry(newStart, newMonths) < currentExpiry {
				t.Errorf("renewal with %d months at offset %d shortened access", months, offset)
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	u := &models.User{PlanStart: t0, PlanMonths: 1}

	ent := Evaluate(u, t0+29*DayMillis)
	if !ent.IsPaid || ent.DaysLeft != 1 || ent.PlanExpiry != t0+30*DayMillis {
		t.Errorf("Evaluate active = %+v", ent)
	}

	ent = Evaluate(u, t0+31*DayMillis)
	if ent.IsPaid || ent.DaysLeft != -1 {
		t.Errorf("Evaluate expired = %+v", ent)
	}
}
