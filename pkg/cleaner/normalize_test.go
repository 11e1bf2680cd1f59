package cleaner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GrayMists/sales-ingress/pkg/model"
	"github.com/GrayMists/sales-ingress/pkg/region"
)

func TestRemoveUnwanted_DeletesEveryListedSubstring(t *testing.T) {
	deletions := []string{"Тернопільська обл., ", "Тернопільський р-н, ", "Україна, "}
	v := RemoveUnwanted(model.Text("  Україна, Тернопільська обл., Тернопільський р-н, м.Тернопіль, вул.Руська, 8  "), deletions)

	require.True(t, v.IsText())
	for _, del := range deletions {
		assert.NotContains(t, v.String(), del)
	}
	assert.Equal(t, v.String(), strings.TrimSpace(v.String()))
	assert.Equal(t, "м.Тернопіль, вул.Руська, 8", v.String())
}

func TestRemoveUnwanted_SingleLeftFold(t *testing.T) {
	// A listed substring produced only by an earlier removal is not removed:
	// removal is one pass in list order, not an iteration to fixpoint.
	v := RemoveUnwanted(model.Text("aabb"), []string{"ab"})
	assert.Equal(t, "ab", v.String())
}

func TestRemoveUnwanted_MissingPassesThrough(t *testing.T) {
	v := RemoveUnwanted(model.Missing(), []string{"щось"})
	assert.False(t, v.IsText())
}

func TestApplyReplacements_OrderSensitive(t *testing.T) {
	rules := []region.Replacement{{From: "A", To: "B"}, {From: "B", To: "C"}}
	v := ApplyReplacements(model.Text("A"), rules)
	assert.Equal(t, "C", v.String())
}

func TestApplyReplacements_MissingPassesThrough(t *testing.T) {
	v := ApplyReplacements(model.Missing(), []region.Replacement{{From: "A", To: "B"}})
	assert.False(t, v.IsText())
}

func TestCollapseSeparators(t *testing.T) {
	v := CollapseSeparators(model.Text("X,,Y"))
	assert.Equal(t, "X,Y", v.String())
}
