// Package interp holds end-to-end fixture tests that exercise the
// lexer, parser, evaluator, and primitive library together against
// whole programs, the way internal/interp/fixture_test.go does for
// DWScript against its own testdata/fixtures tree.
package interp

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/pkg/logo"
)

func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/fixtures/*.logo")
	if err != nil {
		t.Fatalf("glob testdata/fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := logo.ReadSource(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			var out, errOut bytes.Buffer
			interp := logo.CreateInterpreter()
			interp.InstallBackend(runtime.NopBackend{Out: &out, Err: &errOut})

			if _, err := interp.ProcessInstructionList(source); err != nil {
				t.Fatalf("running %s: %v\nstderr:\n%s", name, err, errOut.String())
			}
			if errOut.Len() > 0 {
				t.Fatalf("unexpected stderr output from %s:\n%s", name, errOut.String())
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
