package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type period string

func (p period) String() string { return string(p) }

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buffer := &bytes.Buffer{}
	previousOut := logrus.StandardLogger().Out
	logrus.SetOutput(buffer)
	t.Cleanup(func() { logrus.SetOutput(previousOut) })
	return buffer
}

func TestSetup(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	require.NoError(t, Setup("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	err := Setup("barulhento")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestDevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()
	output := captureOutput(t)

	L.WithFields(Fields{
		"goal_id":     "g1",
		"remote_addr": "10.0.0.1",
	}).WithField("user_agent", "curl").Info("teste")

	assert.Contains(t, output.String(), "goal_id=g1")
	assert.NotContains(t, output.String(), "remote_addr")
	assert.NotContains(t, output.String(), "user_agent")
}

func TestProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()
	output := captureOutput(t)

	L.WithField("remote_addr", "10.0.0.1").Info("teste")

	assert.Contains(t, output.String(), "remote_addr=10.0.0.1")
}

func TestCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()
	output := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ForPeriod(ContextWithCorrelationID(context.Background(), "req-1"), period("03-2024")).Info("DRE gerada")

	assert.Contains(t, output.String(), "correlation_id=req-1")
	assert.Contains(t, output.String(), "period=03-2024")
}
