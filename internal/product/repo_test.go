package product

import "testing"

func TestIncrementDirection(t *testing.T) {
	cases := []struct {
		name      string
		delta     int
		direction string
		want      int
	}{
		{"increase", 5, DirectionIncrease, 5},
		{"decrease", 5, "decrease", -5},
		{"empty defaults to decrease", 3, "", -3},
		{"unknown defaults to decrease", 7, "restock", -7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Increment(tc.delta, tc.direction); got != tc.want {
				t.Fatalf("Increment(%d, %q) = %d, want %d", tc.delta, tc.direction, got, tc.want)
			}
		})
	}
}
