package domain

// Lanes lists the ids held by the figure, group and animator lanes of a tier.
type Lanes struct {
	Figures   []string `json:"figures"`
	Groups    []string `json:"groups"`
	Animators []string `json:"animators"`
}

// Inspection is a read-only view of an engine, safe to serialize.
type Inspection struct {
	Name         string   `json:"name,omitempty"`
	Steps        Lanes    `json:"steps"`
	Instant      Lanes    `json:"instant"`
	Helper       Lanes    `json:"helper"`
	Snapshot     Lanes    `json:"snapshot"`
	Checkpoints  []string `json:"checkpoints"`
	Travelling   []string `json:"travelling,omitempty"`
	UsingHelper  bool     `json:"using_helper"`
	Paused       bool     `json:"paused"`
	Speed        float64  `json:"speed"`
	StepInterval int      `json:"step_interval"`
	Frame        int      `json:"frame"`
}
