package terminal

import "testing"

func TestIsInteractiveUnderTestHarness(t *testing.T) {
	// Test binaries run with piped stdio, so both ends are non-terminals.
	if IsInteractive() {
		t.Skip("running with a real terminal attached")
	}
}
