package Models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestSplitAmount(t *testing.T) {
	// 60% of 1000.00
	assert.Equal(t, int64(60000), SplitAmount(100000, 60))
	// 100% identity
	assert.Equal(t, int64(50000), SplitAmount(50000, 100))
	// zero base
	assert.Equal(t, int64(0), SplitAmount(0, 60))
	// half-up rounding: 33.5% of 10.05 = 3.36675 -> 3.37
	assert.Equal(t, int64(337), SplitAmount(1005, 33.5))
	// half-up at the boundary: 50% of 0.01 = 0.005 -> 0.01
	assert.Equal(t, int64(1), SplitAmount(1, 50))
	// over-allocation is not capped
	assert.Equal(t, int64(150000), SplitAmount(100000, 150))
}

func TestSplitTreatment_PrimaryAndSecondary(t *testing.T) {
	treatment := Treatment{
		Cost:                    100000,
		PrimaryPractitionerID:   1,
		SecondaryPractitionerID: uintPtr(2),
		PrimaryPercentage:       60,
		SecondaryPercentage:     40,
	}
	processedAt := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	entries := SplitTreatment(treatment, processedAt)

	assert.Len(t, entries, 2)
	assert.Equal(t, uint(1), entries[0].PractitionerID)
	assert.Equal(t, int64(60000), entries[0].Amount)
	assert.Equal(t, float64(60), entries[0].Percentage)
	assert.Equal(t, uint(2), entries[1].PractitionerID)
	assert.Equal(t, int64(40000), entries[1].Amount)
	assert.Equal(t, int64(100000), entries[0].BaseAmount)
	assert.Equal(t, int64(100000), entries[1].BaseAmount)
	assert.Equal(t, 3, entries[0].Month)
	assert.Equal(t, 2024, entries[0].Year)
}

func TestSplitTreatment_PrimaryOnly(t *testing.T) {
	treatment := Treatment{
		Cost:                  50000,
		PrimaryPractitionerID: 7,
		PrimaryPercentage:     100,
	}

	entries := SplitTreatment(treatment, time.Now())

	assert.Len(t, entries, 1)
	assert.Equal(t, uint(7), entries[0].PractitionerID)
	assert.Equal(t, int64(50000), entries[0].Amount)
}

func TestSplitTreatment_PrimaryPercentageDefaultsTo100(t *testing.T) {
	treatment := Treatment{
		Cost:                  20000,
		PrimaryPractitionerID: 3,
	}

	entries := SplitTreatment(treatment, time.Now())

	assert.Len(t, entries, 1)
	assert.Equal(t, float64(100), entries[0].Percentage)
	assert.Equal(t, int64(20000), entries[0].Amount)
}

func TestSplitTreatment_SecondaryWithZeroPercentageSkipped(t *testing.T) {
	treatment := Treatment{
		Cost:                    30000,
		PrimaryPractitionerID:   1,
		SecondaryPractitionerID: uintPtr(2),
		PrimaryPercentage:       100,
		SecondaryPercentage:     0,
	}

	entries := SplitTreatment(treatment, time.Now())

	assert.Len(t, entries, 1)
	assert.Equal(t, uint(1), entries[0].PractitionerID)
}

func TestSplitTreatment_OverAllocationPreserved(t *testing.T) {
	treatment := Treatment{
		Cost:                    100000,
		PrimaryPractitionerID:   1,
		SecondaryPractitionerID: uintPtr(2),
		PrimaryPercentage:       100,
		SecondaryPercentage:     50,
	}

	entries := SplitTreatment(treatment, time.Now())

	assert.Len(t, entries, 2)
	assert.Equal(t, int64(100000), entries[0].Amount)
	assert.Equal(t, int64(50000), entries[1].Amount)
}
