package model

import "fmt"

// MacroTarget represents a nutritional goal, either daily or per-meal.
// Every field is independently optional; nil means the user did not set it.
type MacroTarget struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

// Float returns a pointer to v, for building MacroTarget literals.
func Float(v float64) *float64 {
	return &v
}

// IsEmpty reports whether no macro field is set.
func (m MacroTarget) IsEmpty() bool {
	return m.Calories == nil && m.Protein == nil && m.Carbs == nil &&
		m.Fat == nil && m.Sugar == nil && m.Sodium == nil && m.Fiber == nil
}

// Validate rejects negative values on any field that is present.
func (m MacroTarget) Validate() error {
	fields := map[string]*float64{
		"calories": m.Calories,
		"protein":  m.Protein,
		"carbs":    m.Carbs,
		"fat":      m.Fat,
		"sugar":    m.Sugar,
		"sodium":   m.Sodium,
		"fiber":    m.Fiber,
	}
	for name, v := range fields {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", name, *v)
		}
	}
	return nil
}

// Macros represents the required nutritional totals of a generated recipe.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add accumulates o into m field-wise.
func (m *Macros) Add(o Macros) {
	m.Calories += o.Calories
	m.Protein += o.Protein
	m.Carbs += o.Carbs
	m.Fat += o.Fat
}

// Validate rejects negative values.
func (m Macros) Validate() error {
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		return fmt.Errorf("macros must be non-negative")
	}
	return nil
}
