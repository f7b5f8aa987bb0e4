package stage

// Stage describes what the body is doing after a given number of fasting
// hours. MinHours is inclusive, MaxHours exclusive; the last stage is
// open-ended.
type Stage struct {
	MinHours    float64 `json:"min_hours"`
	MaxHours    float64 `json:"max_hours"`
	Label       string  `json:"label"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

var stages = []Stage{
	{MinHours: 0, MaxHours: 4, Label: "Blood Sugar Rising", Icon: "🍎", Description: "Your body is processing your last meal and storing energy."},
	{MinHours: 4, MaxHours: 12, Label: "Sugar Drop", Icon: "📉", Description: "Blood sugar normalizes and insulin levels begin to decline."},
	{MinHours: 12, MaxHours: 18, Label: "Fat Burning", Icon: "🔥", Description: "The \"metabolic switch\" flips. Your body begins burning stored fat for fuel."},
	{MinHours: 18, MaxHours: 24, Label: "Autophagy", Icon: "✨", Description: "Cellular cleanup begins. Old components are recycled for energy."},
	{MinHours: 24, MaxHours: 48, Label: "Growth Hormone", Icon: "📈", Description: "GH levels rise significantly, protecting lean muscle and bone."},
	{MinHours: 48, MaxHours: 72, Label: "Immune Reset", Icon: "🛡️", Description: "Old immune cells are cleared and replaced with new ones."},
	{MinHours: 72, MaxHours: 1000, Label: "Deep Repair", Icon: "💎", Description: "Maximum cellular regeneration and peak metabolic efficiency."},
}

// Classify returns the stage whose [MinHours, MaxHours) range contains
// elapsedHours. The ranges are contiguous from zero and the last one is
// treated as unbounded, so every non-negative input maps to a stage.
func Classify(elapsedHours float64) Stage {
	last := len(stages) - 1
	for i, s := range stages {
		if i == last {
			if elapsedHours >= s.MinHours {
				return s
			}
			break
		}
		if elapsedHours >= s.MinHours && elapsedHours < s.MaxHours {
			return s
		}
	}
	return stages[0]
}

// Stages returns the full narrative table in order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}
