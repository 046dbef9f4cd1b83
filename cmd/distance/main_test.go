package main

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
)

func captureStdout(t *testing.T, run func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	test.That(t, err, test.ShouldBeNil)
	os.Stdout = w
	defer func() {
		os.Stdout = orig
	}()

	run()

	test.That(t, w.Close(), test.ShouldBeNil)
	out, err := io.ReadAll(r)
	test.That(t, err, test.ShouldBeNil)
	return string(out)
}

func TestMainWithArgs(t *testing.T) {
	logger := golog.NewTestLogger(t)

	out := captureStdout(t, func() {
		err := mainWithArgs(context.Background(), []string{"distance"}, logger)
		test.That(t, err, test.ShouldBeNil)
	})
	test.That(t, out, test.ShouldEqual, "Distance: 5\n")

	out = captureStdout(t, func() {
		err := mainWithArgs(context.Background(), []string{"distance", "-x=1", "-y=1"}, logger)
		test.That(t, err, test.ShouldBeNil)
	})
	test.That(t, out, test.ShouldContainSubstring, "Distance: 1.41421")
}

func TestMainWithArgsBadPoint(t *testing.T) {
	logger := golog.NewTestLogger(t)
	err := mainWithArgs(context.Background(), []string{"distance", "-x=NaN"}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not finite")
}
