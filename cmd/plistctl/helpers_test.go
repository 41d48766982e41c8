package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/stretchr/testify/require"
)

// writeFixture stores a small application manifest under dir in format f.
func writeFixture(t *testing.T, dir string, f plist.Format) string {
	t.Helper()
	tree := plist.DictionaryOf(
		"CFBundleIdentifier", "com.example.demo",
		"CFBundleVersion", "7",
		"UIDeviceFamily", plist.ArrayOf(1, 2),
		"NSAppTransportSecurity", plist.DictionaryOf("NSAllowsArbitraryLoads", false),
	)
	defer tree.Free()
	if f != plist.FormatJSON && f != plist.FormatOpenStep {
		tree.Insert("BuildDate", plist.NewDate(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
	}
	path := filepath.Join(dir, "Info."+f.String())
	require.NoError(t, plist.WriteFile(path, tree, f, plist.EncodeOptions{}))
	return path
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	getShowType = false
	dumpFormat, dumpPretty = "", true
	convertTo, convertPretty = "xml", false
	setOutput, deleteOutput, mergeOutput = "", "", ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}
