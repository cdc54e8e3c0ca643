package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"LEVEL", "DEPTH", "ITEMS"},
		{"All Categories", "1", "4"},
		{"Mobile Phones", "3", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignRight})
	require.Equal(t, []string{
		"LEVEL           DEPTH  ITEMS",
		"All Categories      1      4",
		"Mobile Phones       3     12",
	}, got)
}

func TestFormatMeasuresCellsNotBytes(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"\x1b[1mab\x1b[0m", "y"},
		{"abcd"},
	}
	got := Format(rows, nil)
	require.Equal(t, "日本  x", got[0])
	require.Equal(t, "\x1b[1mab\x1b[0m    y", got[1])
	require.Equal(t, "abcd  ", got[2])
}

func TestFormatEmpty(t *testing.T) {
	require.Nil(t, Format(nil, nil))
}
