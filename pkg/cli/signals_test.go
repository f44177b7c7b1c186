package cli

import "testing"

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler()
	if ctx == nil {
		t.Fatal("SetupSignalHandler() returned nil context")
	}

	select {
	case <-ctx.Done():
		t.Error("context should not be canceled without a signal")
	default:
	}
}
