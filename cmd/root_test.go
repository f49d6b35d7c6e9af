package cmd

import (
	"testing"

	"github.com/liamg/ipsniff/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfigDefaults(t *testing.T) {
	cfg, err := buildConfig([]string{"192.168.1.1"}, scan.DefaultWorkers, "", false)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.1", cfg.Target.String())
	assert.Equal(t, uint16(1), cfg.StartPort)
	assert.Equal(t, uint16(scan.MaxPort), cfg.EndPort)
	assert.Equal(t, 4, cfg.Workers)
}

func TestBuildConfigWithPortRange(t *testing.T) {
	cfg, err := buildConfig([]string{"::1", "1024"}, 8, "20", true)
	require.NoError(t, err)

	assert.Equal(t, uint16(20), cfg.StartPort)
	assert.Equal(t, uint16(1024), cfg.EndPort)
	assert.Equal(t, 8, cfg.Workers)
}

func TestBuildConfigErrors(t *testing.T) {

	tests := []struct {
		name     string
		args     []string
		threads  int
		start    string
		portsSet bool
		message  string
	}{
		{name: "no arguments", threads: 4, message: "not enough arguments"},
		{name: "extra argument", args: []string{"127.0.0.1", "80"}, threads: 4, message: "too many arguments"},
		{name: "extra argument with ports", args: []string{"127.0.0.1", "80", "90"}, threads: 4, start: "1", portsSet: true, message: "too many arguments"},
		{name: "bad address", args: []string{"300.1.1.1"}, threads: 4, message: "invalid IP address"},
		{name: "hostname", args: []string{"example.com"}, threads: 4, message: "invalid IP address"},
		{name: "zero threads", args: []string{"127.0.0.1"}, threads: 0, message: "failed to parse thread number"},
		{name: "threads beyond max", args: []string{"127.0.0.1", "10"}, threads: scan.MaxWorkers + 1, start: "1", portsSet: true, message: "failed to parse thread number"},
		{name: "bad start port", args: []string{"127.0.0.1", "80"}, threads: 4, start: "abc", portsSet: true, message: "failed to parse start port number"},
		{name: "missing end port", args: []string{"127.0.0.1"}, threads: 4, start: "1", portsSet: true, message: "missing end port number argument"},
		{name: "bad end port", args: []string{"127.0.0.1", "x"}, threads: 4, start: "1", portsSet: true, message: "failed to parse end port number"},
		{name: "inverted range", args: []string{"127.0.0.1", "4000"}, threads: 4, start: "5000", portsSet: true, message: "port range out of bounds"},
		{name: "end beyond max", args: []string{"127.0.0.1", "70000"}, threads: 4, start: "1", portsSet: true, message: "port range out of bounds"},
		{name: "zero start", args: []string{"127.0.0.1", "10"}, threads: 4, start: "0", portsSet: true, message: "port range out of bounds"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := buildConfig(test.args, test.threads, test.start, test.portsSet)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.message)
		})
	}
}

func TestBuildConfigInvertedRangeIsRangeError(t *testing.T) {
	_, err := buildConfig([]string{"127.0.0.1", "4000"}, 4, "5000", true)
	assert.ErrorIs(t, err, scan.ErrInvalidPortRange)
}

func TestNormaliseArgs(t *testing.T) {
	assert.Equal(t, []string{"--help"}, normaliseArgs([]string{"-help"}))
	assert.Equal(t, []string{"127.0.0.1", "-j", "8"}, normaliseArgs([]string{"127.0.0.1", "-j", "8"}))
}
