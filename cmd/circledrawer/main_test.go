package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/outofforest/logger"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	requireT := require.New(t)
	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))

	scriptFile := filepath.Join(t.TempDir(), "script.txt")
	requireT.NoError(os.WriteFile(scriptFile, []byte("set a 3,2,1\nset b 4,5,6\ntransfer c b\ntransfer a b\n"), 0o600))

	out := &bytes.Buffer{}
	requireT.NoError(run(ctx, scriptFile, out))
	requireT.Equal("a = [3 2 1]\nb = [4 5 6]\na = [2 1]\nb = [3 4 5 6]\n", out.String())
}

func TestRunMissingScript(t *testing.T) {
	requireT := require.New(t)
	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))

	requireT.ErrorIs(run(ctx, filepath.Join(t.TempDir(), "missing.txt"), &bytes.Buffer{}), os.ErrNotExist)
}
