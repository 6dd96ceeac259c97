package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"adboard/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}
