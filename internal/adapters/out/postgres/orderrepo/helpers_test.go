package orderrepo_test

import "time"

func testNow() time.Time {
	return time.Date(2025, 4, 10, 8, 30, 0, 0, time.UTC)
}
