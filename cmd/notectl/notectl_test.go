package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfer(t *testing.T) {
	out, err := run(t, "infer", "--ref", "2025-10-17T10:00:00Z", "call", "mom", "next", "Monday", "evening")
	require.NoError(t, err)
	assert.Equal(t, "event_date: 2025-10-20\nevent_time: 19:00:00\nreference: 2025-10-17T10:00:00Z\n", out)
}

func TestInfer_TimezoneAndJSON(t *testing.T) {
	// 23:00 UTC is already the next morning in Hong Kong.
	out, err := run(t, "infer", "--json", "--tz", "Asia/Hong_Kong", "--ref", "2025-10-17T23:00:00Z", "gym tomorrow")
	require.NoError(t, err)

	var got map[string]*string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got["event_date"])
	assert.Equal(t, "2025-10-19", *got["event_date"])
	assert.Nil(t, got["event_time"])
	require.NotNil(t, got["reference"])
	assert.Equal(t, "2025-10-18T07:00:00+08:00", *got["reference"])
}

func TestInfer_Errors(t *testing.T) {
	tcs := map[string][]string{
		"no text":      {"infer"},
		"bad ref":      {"infer", "--ref", "tomorrow", "lunch"},
		"bad timezone": {"infer", "--tz", "Mars/Olympus", "lunch"},
	}
	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestNormalize(t *testing.T) {
	out, err := run(t, "normalize", "--date", "20/10/2025", "--time", "3:05 pm")
	require.NoError(t, err)
	assert.Equal(t, "event_date: 2025-10-20\nevent_time: 15:05:00\n", out)

	out, err = run(t, "normalize", "--time", "09:30")
	require.NoError(t, err)
	assert.Equal(t, "event_date: -\nevent_time: 09:30:00\n", out)
}

func TestNormalize_Errors(t *testing.T) {
	tcs := map[string][]string{
		"no flags": {"normalize"},
		"bad date": {"normalize", "--date", "someday"},
		"bad time": {"normalize", "--time", "teatime"},
	}
	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}
