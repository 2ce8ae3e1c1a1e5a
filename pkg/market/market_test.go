package market

import "testing"

func TestPage_Clamp(t *testing.T) {
	cases := []struct {
		in, want Page
	}{
		{Page{}, Page{Limit: DefaultLimit}},
		{Page{Limit: 5, Offset: 10}, Page{Limit: 5, Offset: 10}},
		{Page{Limit: 500, Offset: -3}, Page{Limit: MaxLimit}},
	}
	for _, tc := range cases {
		if got := tc.in.Clamp(); got != tc.want {
			t.Fatalf("Clamp(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusOpen, StatusClosed, StatusResolved, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if Status("pending").Valid() {
		t.Fatal("expected unknown status to be invalid")
	}
}
