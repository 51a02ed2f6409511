package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroTargetIsEmpty(t *testing.T) {
	assert.True(t, MacroTarget{}.IsEmpty())
	assert.False(t, MacroTarget{Calories: Float(0)}.IsEmpty(), "an explicit zero is still a set value")
	assert.False(t, MacroTarget{Fiber: Float(25)}.IsEmpty())
}

func TestMacroTargetValidate(t *testing.T) {
	assert.NoError(t, MacroTarget{}.Validate())
	assert.NoError(t, MacroTarget{Calories: Float(0), Protein: Float(120)}.Validate())
	assert.Error(t, MacroTarget{Protein: Float(-1)}.Validate())
	assert.Error(t, MacroTarget{Sodium: Float(-500)}.Validate())
}

func TestMacroTargetOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(MacroTarget{Calories: Float(1800)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"calories": 1800}`, string(data))
}

func TestMacrosAdd(t *testing.T) {
	total := Macros{Calories: 300, Protein: 20, Carbs: 30, Fat: 10}
	total.Add(Macros{Calories: 500, Protein: 35, Carbs: 45, Fat: 15})

	assert.Equal(t, Macros{Calories: 800, Protein: 55, Carbs: 75, Fat: 25}, total)
}

func TestMacrosValidate(t *testing.T) {
	assert.NoError(t, Macros{}.Validate())
	assert.Error(t, Macros{Fat: -2}.Validate())
}
