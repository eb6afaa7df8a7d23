package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/rocket/pkg/errors"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantCode    string
	}{
		{
			name:        "coded error",
			err:         errors.New(errors.ErrCodeConfiguration, "cannot build a rocket shorter than 3 rows (got 2)"),
			wantMessage: "cannot build a rocket shorter than 3 rows (got 2)",
			wantCode:    "CONFIGURATION",
		},
		{
			name:        "wrapped keeps outer code",
			err:         errors.Wrap(errors.ErrCodeUnsatisfiableHeight, errors.New(errors.ErrCodeNoEligiblePart, "none"), "cannot fill"),
			wantMessage: "cannot fill",
			wantCode:    "UNSATISFIABLE_HEIGHT",
		},
		{
			name:        "plain error",
			err:         fmt.Errorf("boom"),
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ReportError(&buf, tt.err)
			got := buf.String()

			if !strings.Contains(got, iconError) {
				t.Errorf("missing error icon: %q", got)
			}
			if !strings.Contains(got, tt.wantMessage) {
				t.Errorf("missing message %q: %q", tt.wantMessage, got)
			}
			if tt.wantCode != "" && !strings.Contains(got, tt.wantCode) {
				t.Errorf("missing code %q: %q", tt.wantCode, got)
			}
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("output should end with a newline: %q", got)
			}
		})
	}
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf, "Wrote %d parts", 23)
	if !strings.Contains(buf.String(), "Wrote 23 parts") {
		t.Errorf("printInfo() = %q", buf.String())
	}
}
