package usecase

import (
	"testing"

	"go.uber.org/goleak"
)

// award dispatches must never outlive Drain
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
