package exam

// specFile is the structured exam schema accepted alongside markdown.
type specFile struct {
	Version   int            `json:"version" yaml:"version"`
	Questions []specQuestion `json:"questions" yaml:"questions"`
}

// specQuestion is one question entry in a structured exam file.
type specQuestion struct {
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Valid       int      `json:"valid" yaml:"valid"`
	AIGenerated bool     `json:"ai_generated" yaml:"ai_generated"`
	Section     string   `json:"section" yaml:"section"`
}
