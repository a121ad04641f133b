package main

import (
	"bufio"
	"strings"
	"testing"
)

func withInput(t *testing.T, in string) {
	t.Helper()
	old := reader
	reader = bufio.NewReader(strings.NewReader(in))
	t.Cleanup(func() { reader = old })
}

func TestPromptNumberRetriesUntilValid(t *testing.T) {
	withInput(t, "17O\nNaN\n\n172.5\n")
	if got := promptNumber("Height (cm): "); got != 172.5 {
		t.Errorf("got %v", got)
	}
}

func TestPromptIntRetriesUntilValid(t *testing.T) {
	withInput(t, "forty\n4.5\n99999999999999999999\n45\n")
	if got := promptInt("Age: "); got != 45 {
		t.Errorf("got %v", got)
	}
}
