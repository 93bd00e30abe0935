package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		label string
		args  []string
		want  Invocation
	}{
		{
			label: "Two positionals",
			args:  []string{"wirefang", "frame.bin", "eth0"},
			want:  Invocation{File: "frame.bin", Interface: "eth0"},
		},
		{
			label: "Extra leading positionals are ignored",
			args:  []string{"wirefang", "a", "b", "c"},
			want:  Invocation{File: "b", Interface: "c"},
		},
		{
			label: "Metrics flag",
			args:  []string{"wirefang", "--metrics-file=/var/lib/node_exporter/wirefang.prom", "frame.bin", "eth0"},
			want:  Invocation{File: "frame.bin", Interface: "eth0", MetricsFile: "/var/lib/node_exporter/wirefang.prom"},
		},
		{
			label: "Leading klog flag",
			args:  []string{"wirefang", "--v=0", "frame.bin", "eth0"},
			want:  Invocation{File: "frame.bin", Interface: "eth0"},
		},
		{
			label: "Unknown flag is ignored",
			args:  []string{"wirefang", "--frobnicate", "--", "frame.bin", "eth0"},
			want:  Invocation{File: "frame.bin", Interface: "eth0"},
		},
		{
			label: "Dash file after terminator",
			args:  []string{"wirefang", "--", "-frame.bin", "eth0"},
			want:  Invocation{File: "-frame.bin", Interface: "eth0"},
		},
		{
			label: "Unknown flag does not swallow the file",
			args:  []string{"wirefang", "--foo", "b", "c"},
			want:  Invocation{File: "b", Interface: "c"},
		},
		{
			label: "Short flag without value",
			args:  []string{"wirefang", "-x", "b", "c"},
			want:  Invocation{File: "b", Interface: "c"},
		},
		{
			label: "Verbosity without value",
			args:  []string{"wirefang", "-v", "b", "c"},
			want:  Invocation{File: "b", Interface: "c"},
		},
		{
			label: "Help is just another leading argument",
			args:  []string{"wirefang", "--help", "b", "c"},
			want:  Invocation{File: "b", Interface: "c"},
		},
		{
			label: "File starting with a dash",
			args:  []string{"wirefang", "-frame.bin", "c"},
			want:  Invocation{File: "-frame.bin", Interface: "c"},
		},
		{
			label: "Flags after the file are the file and interface",
			args:  []string{"wirefang", "--metrics-file", "--v=2"},
			want:  Invocation{File: "--metrics-file", Interface: "--v=2"},
		},
		{
			label: "VLAN style name",
			args:  []string{"wirefang", "frame.bin", "eth0.100"},
			want:  Invocation{File: "frame.bin", Interface: "eth0.100"},
		},
	}
	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			inv, err := ParseInvocation(test.args)
			require.NoError(t, err)
			assert.Equal(t, test.want, *inv)
		})
	}
}

func TestParseInvocationUsage(t *testing.T) {
	tests := []struct {
		label string
		args  []string
	}{
		{"No arguments at all", nil},
		{"Program name only", []string{"wirefang"}},
		{"One positional", []string{"wirefang", "frame.bin"}},
		{"Empty path", []string{"wirefang", "", "eth0"}},
		{"NUL in path", []string{"wirefang", "frame\x00.bin", "eth0"}},
		{"Empty interface", []string{"wirefang", "frame.bin", ""}},
		{"Interface too long", []string{"wirefang", "frame.bin", strings.Repeat("e", 16)}},
		{"Slash in interface", []string{"wirefang", "frame.bin", "eth/0"}},
		{"Colon in interface", []string{"wirefang", "frame.bin", "eth0:1"}},
		{"Space in interface", []string{"wirefang", "frame.bin", "eth 0"}},
		{"Dot interface", []string{"wirefang", "frame.bin", ".."}},
	}
	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			inv, err := ParseInvocation(test.args)
			require.Error(t, err)
			assert.Nil(t, inv)
			assert.Equal(t, UsageError, KindOf(err))
			assert.Equal(t, Usage, Diagnostic(err))
		})
	}
}

func TestLongestInterfaceName(t *testing.T) {
	inv, err := ParseInvocation([]string{"wirefang", "frame.bin", strings.Repeat("e", 15)})
	require.NoError(t, err)
	assert.Len(t, inv.Interface, 15)
}
