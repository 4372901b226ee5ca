package models

type SymptomTag struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultSymptomTags lists the symptoms offered by the tracking form. Overrides
// may still carry free-form tags outside this list.
func DefaultSymptomTags() []SymptomTag {
	return []SymptomTag{
		{Name: "Cramps", Icon: "🩸", Color: "#FF4444"},
		{Name: "Headache", Icon: "🤕", Color: "#FFA500"},
		{Name: "Mood swings", Icon: "😢", Color: "#9B59B6"},
		{Name: "Bloating", Icon: "🎈", Color: "#3498DB"},
		{Name: "Fatigue", Icon: "😴", Color: "#95A5A6"},
		{Name: "Breast tenderness", Icon: "💔", Color: "#E91E63"},
		{Name: "Acne", Icon: "🔴", Color: "#E74C3C"},
		{Name: "Back pain", Icon: "🦴", Color: "#8E6E53"},
		{Name: "Nausea", Icon: "🤢", Color: "#7CB342"},
		{Name: "Cravings", Icon: "🍫", Color: "#A1887F"},
		{Name: "Insomnia", Icon: "🌙", Color: "#5C6BC0"},
		{Name: "Anxiety", Icon: "😰", Color: "#FF7043"},
	}
}
