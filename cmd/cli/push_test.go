package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/jobs"
)

func dispatchResult() *jobs.DispatchResult {
	return &jobs.DispatchResult{
		Triggered: []jobs.Trigger{{RefID: "refs/heads/a", Kind: core.BuildVerification, Commit: "aaa111"}},
		Failed:    []jobs.Trigger{{RefID: "refs/heads/master", Kind: core.BuildPublish, Commit: "bbb222", Err: errors.New("jenkins down")}},
	}
}

func TestPrintDispatchResult_FailuresFailInBothModes(t *testing.T) {
	for _, asJSON := range []bool{false, true} {
		viper.Set("json", asJSON)
		var out bytes.Buffer
		err := printDispatchResult(&out, dispatchResult())
		require.Error(t, err, "json=%v", asJSON)
		assert.Contains(t, err.Error(), "1 of 2 builds failed to start")
		assert.Contains(t, out.String(), "jenkins down")
	}
	viper.Set("json", false)
}

func TestPrintDispatchResult_JSON(t *testing.T) {
	viper.Set("json", true)
	defer viper.Set("json", false)

	var out bytes.Buffer
	require.NoError(t, printDispatchResult(&out, &jobs.DispatchResult{
		Triggered: []jobs.Trigger{{RefID: "refs/heads/a", Kind: core.BuildVerification, Commit: "aaa111"}},
	}))

	var decoded struct {
		Triggered []map[string]string `json:"triggered"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Triggered, 1)
	assert.Equal(t, "refs/heads/a", decoded.Triggered[0]["ref_id"])
	assert.NotContains(t, decoded.Triggered[0], "error")
}
