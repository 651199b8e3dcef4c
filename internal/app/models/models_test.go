package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskState_String(t *testing.T) {
	tests := []struct {
		state    TaskState
		expected string
	}{
		{StateQueued, "QUEUED"},
		{StateProcessing, "PROCESSING"},
		{StateDone, "DONE"},
		{StateErrorUnknown, "ERROR_UNKNOWN"},
		{StateErrorTooLong, "ERROR_TOO_LONG"},
		{StateErrorDownload, "ERROR_DOWNLOAD"},
		{StateErrorNotFound, "ERROR_NOT_FOUND"},
		{TaskState("99"), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestTaskState_Classification(t *testing.T) {
	tests := []struct {
		state      TaskState
		isError    bool
		isTerminal bool
	}{
		{StateQueued, false, false},
		{StateProcessing, false, false},
		{StateDone, false, true},
		{StateErrorUnknown, true, true},
		{StateErrorTooLong, true, true},
		{StateErrorDownload, true, true},
		{StateErrorNotFound, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.isError, tt.state.IsError())
			assert.Equal(t, tt.isTerminal, tt.state.IsTerminal())
		})
	}
}
