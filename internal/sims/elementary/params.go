package elementary

import (
	"strconv"

	"github.com/gfxprim/automata/internal/core"
)

var (
	_ core.Automaton                 = (*Simulator)(nil)
	_ core.ParameterControlsProvider = (*Simulator)(nil)
	_ core.IntParameterSetter        = (*Simulator)(nil)
	_ core.BoolParameterSetter       = (*Simulator)(nil)
)

// Parameters reports the current configuration grouped for display.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "History",
			Params: []core.Parameter{
				intParam("w", "Width (words)", s.w),
				intParam("h", "Height (rows)", s.h),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				{Key: "rules", Label: "Rule table", Type: core.ParamTypeList, Value: s.stepper.Rules.String()},
				intParam("rule", "First rule", int(s.stepper.Rules[0])),
				intParam("meta_rule", "Meta-rule", int(s.stepper.Meta.Code)),
				boolParam("meta", "Meta-rule enabled", s.stepper.Meta.Enabled),
				boolParam("reversible", "Reversible", s.stepper.Reversible),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Simulator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255},
		{Key: "meta_rule", Label: "Meta", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255},
		{Key: "meta", Label: "Meta on", Type: core.ParamTypeBool},
		{Key: "reversible", Label: "Reversible", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer parameter. Values outside 0..255 are
// rejected.
func (s *Simulator) SetIntParameter(key string, value int) bool {
	if value < 0 || value > 255 {
		return false
	}
	switch key {
	case "rule":
		rules := append(Table(nil), s.stepper.Rules...)
		rules[0] = uint8(value)
		s.stepper.Rules = rules
	case "meta_rule":
		s.SetMetaRule(uint8(value))
	default:
		return false
	}
	return true
}

// SetBoolParameter toggles a boolean parameter.
func (s *Simulator) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "meta":
		s.SetMetaRuleEnabled(value)
	case "reversible":
		s.SetReversible(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
