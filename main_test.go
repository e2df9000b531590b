package main

import "testing"

func TestCheckFrontend(t *testing.T) {
	tests := []struct {
		frontend string
		maxTicks int
		wantErr  bool
	}{
		{frontendWindow, 0, false},
		{frontendTerminal, 0, false},
		{frontendHeadless, 0, true},
		{frontendHeadless, 600, false},
		{frontendWindow, -1, true},
	}

	for _, tt := range tests {
		err := checkFrontend(tt.frontend, tt.maxTicks)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkFrontend(%q, %d) error = %v, wantErr %v", tt.frontend, tt.maxTicks, err, tt.wantErr)
		}
	}
}
