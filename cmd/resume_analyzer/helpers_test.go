package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
)

const sampleResume = `Jane Smith
jane.smith@example.com | (555) 123-4567 | Austin, TX

Summary
Backend engineer with 6 years of experience building APIs.

Experience
Senior Developer at Acme Corp (2019 - 2023)
Built payment services in Python and Go used by millions of customers

Skills
Python, React, Docker
`

// useCommand resets shared command state and captures cmd's output.
func useCommand(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()

	settings = config.Defaults()
	logger = zerolog.Nop()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		settings = config.Defaults()
	})
	return &out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
