package model

import "testing"

func TestIngestState_IsActive(t *testing.T) {
	tests := []struct {
		state    IngestState
		expected bool
	}{
		{IngestIdle, false},
		{IngestValidating, true},
		{IngestReading, true},
		{IngestApplying, true},
		{IngestDone, false},
		{IngestRejected, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("IngestState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestIngestState_IsFinished(t *testing.T) {
	tests := []struct {
		state    IngestState
		expected bool
	}{
		{IngestIdle, false},
		{IngestValidating, false},
		{IngestReading, false},
		{IngestApplying, false},
		{IngestDone, true},
		{IngestRejected, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("IngestState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestIngestState_String(t *testing.T) {
	state := IngestReading
	expected := "Reading"
	result := state.String()

	if result != expected {
		t.Errorf("IngestState.String() = %s, expected %s", result, expected)
	}
}
