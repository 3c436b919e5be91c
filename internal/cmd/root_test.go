package cmd

import "testing"

func TestRunRootRejectsWrongArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"only-one"}, {"a", "b", "c"}} {
		if err := runRoot(rootCmd, args); err == nil {
			t.Errorf("runRoot(%v) = nil error, want non-nil for wrong argument count", args)
		}
	}
}
