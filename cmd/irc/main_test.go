package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		what             string
		expectedCommand  string
		expectedArgument string
	}{
		{"models", commandModels, ""},
		{"info 2", commandInfo, "2"},
		{"info", commandInfo, ""},
		{"image https://example.com/cat.png", commandImage, "https://example.com/cat.png"},
		{"image", commandImage, ""},
		{"information is power", commandText, "information is power"},
		{"models are overrated", commandText, "models are overrated"},
		{"I love this movie", commandText, "I love this movie"},
	}
	for _, test := range tests {
		command, argument := parseRequest(test.what)
		require.Equal(t, test.expectedCommand, command, test.what)
		require.Equal(t, test.expectedArgument, argument, test.what)
	}
}
