package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestErrorsAreReturnedNotPrinted(t *testing.T) {
	out, err := execute(t, "run", "nope")
	if err == nil || !strings.Contains(err.Error(), `unknown scene "nope"`) {
		t.Fatalf("Execute() error = %v, want unknown scene", err)
	}
	if out != "" {
		t.Errorf("command printed %q, the error should only be reported by main", out)
	}
}

func TestListShowsScenes(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"menu", "collision", "snow", "sprites", "hello", "music"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %s:\n%s", name, out)
		}
	}
}
