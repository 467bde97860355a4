package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusPending, "pending"},
		{StatusSuccess, "success"},
		{StatusFailed, "failed"},
		{Status(42), "unknown"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.status.String())
	}
}

func TestSource_TitleOmittedWhenEmpty(t *testing.T) {
	raw, err := json.Marshal(Source{Code: "GK", Article: "34", URL: "https://x"})
	require.NoError(t, err)
	require.NotContains(t, string(raw), "title")
}

func TestHistoryEntry_JSONFieldNames(t *testing.T) {
	// формат должен совпадать с тем, что писал браузерный клиент
	raw, err := json.Marshal(HistoryEntry{Question: "q", Answer: "a", Timestamp: 1700000000000})
	require.NoError(t, err)
	require.JSONEq(t, `{"question":"q","answer":"a","timestamp":1700000000000}`, string(raw))
}
