package banner

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// captureStdout captures stdout output during function execution.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = old

	return <-outC
}

func TestPrintStartupBanner(t *testing.T) {
	out := captureStdout(t, func() {
		PrintStartupBanner("8.0.404", "ilspycmd")
	})

	assert.Contains(t, out, "decompile-batch")
	assert.Contains(t, out, "Runtime:    8.0.404")
	assert.Contains(t, out, "Decompiler: ilspycmd")
	assert.Contains(t, out, "═══")
}

func TestPrintSummaryBanner(t *testing.T) {
	tests := []struct {
		name         string
		succeeded    int
		failed       int
		outDir       string
		durationSecs int
		expectedText []string
		absentText   []string
	}{
		{
			name:         "all succeeded",
			succeeded:    3,
			failed:       0,
			outDir:       "./out",
			durationSecs: 72,
			expectedText: []string{
				"✓ Decompilation complete",
				"Succeeded:  3",
				"Failed:     0",
				"Output:     ./out",
				"Duration:   1m 12s",
			},
			absentText: []string{"failures"},
		},
		{
			name:         "partial failures",
			succeeded:    4,
			failed:       1,
			outDir:       "/tmp/decompiled",
			durationSecs: 5,
			expectedText: []string{
				"⚠ Decompilation finished with failures",
				"Succeeded:  4",
				"Failed:     1",
				"Duration:   5s",
			},
		},
		{
			name:         "nothing succeeded",
			succeeded:    0,
			failed:       2,
			outDir:       "out",
			durationSecs: 0,
			expectedText: []string{
				"⚠ Decompilation finished with failures",
				"Succeeded:  0",
				"Failed:     2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() {
				PrintSummaryBanner(tt.succeeded, tt.failed, tt.outDir, tt.durationSecs)
			})
			for _, text := range tt.expectedText {
				assert.Contains(t, out, text)
			}
			for _, text := range tt.absentText {
				assert.NotContains(t, out, text)
			}
		})
	}
}

func TestPrintFatalBanner(t *testing.T) {
	t.Run("headline only", func(t *testing.T) {
		out := captureStdout(t, func() {
			PrintFatalBanner("ilspycmd install failed")
		})
		assert.Contains(t, out, "✗ ilspycmd install failed")
	})

	t.Run("headline with guidance lines", func(t *testing.T) {
		out := captureStdout(t, func() {
			PrintFatalBanner(".NET SDK not found",
				"Install the .NET SDK to continue:",
				"https://dotnet.microsoft.com/download")
		})
		assert.Contains(t, out, "✗ .NET SDK not found")
		assert.Contains(t, out, "Install the .NET SDK to continue:")
		assert.Contains(t, out, "https://dotnet.microsoft.com/download")

		// Guidance is inside its own separated section.
		assert.GreaterOrEqual(t, strings.Count(out, "═══"), 3)
	})
}
