package snippet

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inquiry/internal/domain"
)

func TestAssemble_LabelsAreOneBasedAndParallel(t *testing.T) {
	results := []domain.RankedResult{
		{Text: "How to charge the device.", Score: 0.9},
		{Text: "How to pair over Bluetooth.", Score: 0.8},
		{Text: "Cleaning instructions.", Score: 0.7},
	}
	bundle := Assemble(results)

	require.Len(t, bundle.Citations, len(results))
	blocks := strings.Split(bundle.Context, "\n\n")
	require.Len(t, blocks, len(results))
	for i, res := range results {
		tag := fmt.Sprintf("[%d]", i+1)
		assert.True(t, strings.HasPrefix(bundle.Citations[i], tag+" "))
		assert.Equal(t, tag+" "+res.Text, blocks[i])
	}
}

func TestAssemble_PreviewTruncated(t *testing.T) {
	long := strings.Repeat("troubleshooting ", 20)
	bundle := Assemble([]domain.RankedResult{{Text: long}})
	require.Len(t, bundle.Citations, 1)
	// "[1] " plus at most 80 preview characters.
	assert.LessOrEqual(t, len([]rune(bundle.Citations[0])), 84)
}

func TestAssemble_Empty(t *testing.T) {
	bundle := Assemble(nil)
	assert.Empty(t, bundle.Context)
	assert.Empty(t, bundle.Citations)
}
