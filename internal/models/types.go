package models

type Speaker string

const (
	SpeakerRep       Speaker = "rep"
	SpeakerHomeowner Speaker = "homeowner"
)

// Turn is one contiguous utterance by a single speaker.
type Turn struct {
	ID        int     `json:"id"`
	Speaker   Speaker `json:"speaker"`
	StartMs   int64   `json:"start_ms"`
	EndMs     int64   `json:"end_ms"`
	Text      string  `json:"text"`
	OverlapMs int64   `json:"overlap_ms,omitempty"`
}

// Transcript is the diarized session output supplied by the capture side.
// The grader never mutates it.
type Transcript struct {
	SessionID string `json:"session_id"`
	Turns     []Turn `json:"turns"`
}

// StepCoverage marks which stages of the pitch showed up anywhere in the call.
type StepCoverage struct {
	Opener    bool `json:"opener"`
	Discovery bool `json:"discovery"`
	Value     bool `json:"value"`
	Price     bool `json:"price"`
	Close     bool `json:"close"`
}

// ObjectiveMetrics is the deterministic snapshot extracted from a transcript.
type ObjectiveMetrics struct {
	TalkRatioRep         float64      `json:"talk_ratio_rep"`
	QuestionRate         float64      `json:"question_rate"`
	Interrupts           int          `json:"interrupts"`
	InterruptsApologized int          `json:"interrupts_apologized"`
	WPMRep               float64      `json:"wpm_rep"`
	DeadAirCount         int          `json:"dead_air_count"`
	FillersPer100        float64      `json:"fillers_per_100"`
	StepCoverage         StepCoverage `json:"step_coverage"`
	CloseAttempts        int          `json:"close_attempts"`

	// Raw counters kept for downstream heuristics.
	RepWords         int `json:"rep_words"`
	TotalWords       int `json:"total_words"`
	RepTurns         int `json:"rep_turns"`
	TotalTurns       int `json:"total_turns"`
	RepQuestionTurns int `json:"rep_question_turns"`
}

type ObjectionLabel string

const (
	LabelPrice         ObjectionLabel = "price"
	LabelTiming        ObjectionLabel = "timing"
	LabelSpouse        ObjectionLabel = "spouse"
	LabelTrust         ObjectionLabel = "trust"
	LabelCompetitor    ObjectionLabel = "competitor"
	LabelNotInterested ObjectionLabel = "not_interested"
)

// ObjectionSpan is a handling window over Transcript.Turns: it opens at the
// homeowner turn that raised the objection and covers the rep's response.
type ObjectionSpan struct {
	Label       ObjectionLabel `json:"label"`
	StartTurnID int            `json:"start_turn_id"`
	EndTurnID   int            `json:"end_turn_id"`
}

// CaseSteps records which of the four handling steps the rep hit (0 or 1 each).
type CaseSteps struct {
	Ack     int `json:"ack"`
	Clarify int `json:"clarify"`
	Address int `json:"address"`
	Confirm int `json:"confirm"`
}

type ObjectionCaseScore struct {
	Label ObjectionLabel `json:"label"`
	Steps CaseSteps      `json:"steps"`
	Notes string         `json:"notes"`
	Score int            `json:"score"`
}

type RubricCase struct {
	Label string `json:"label"`
	Score int    `json:"score"`
	Notes string `json:"notes"`
}

type RubricObjectionHandling struct {
	Overall int          `json:"overall"`
	Cases   []RubricCase `json:"cases"`
}

type RubricCompliance struct {
	Score      int      `json:"score"`
	Violations []string `json:"violations"`
}

// RubricOutput is the LLM's structured assessment. It arrives as untrusted
// JSON and is only used after a normalization pass clamps every field.
type RubricOutput struct {
	Discovery         int                     `json:"discovery"`
	ObjectionHandling RubricObjectionHandling `json:"objection_handling"`
	ClarityEmpathy    int                     `json:"clarity_empathy"`
	SolutionFraming   int                     `json:"solution_framing"`
	PricingNextStep   int                     `json:"pricing_next_step"`
	Compliance        RubricCompliance        `json:"compliance"`
	TopWins           []string                `json:"top_wins"`
	TopFixes          []string                `json:"top_fixes"`
	Drills            []string                `json:"drills"`
}

type Band string

const (
	BandReady       Band = "Ready"
	BandNeedsPolish Band = "Needs polish"
	BandRework      Band = "Rework"
)

type ComponentScores struct {
	Objective float64 `json:"objective"`
	LLM       float64 `json:"llm"`
	Penalties float64 `json:"penalties"`
	Final     int     `json:"final"`
	Band      Band    `json:"band"`
}

// GradePacket is the aggregate result of grading one session. It is created
// fresh per invocation and never mutated afterwards.
type GradePacket struct {
	SessionID string               `json:"session_id"`
	Metrics   ObjectiveMetrics     `json:"metrics"`
	Spans     []ObjectionSpan      `json:"spans"`
	Cases     []ObjectionCaseScore `json:"cases"`
	Rubric    *RubricOutput        `json:"rubric,omitempty"`
	Scores    ComponentScores      `json:"scores"`
}

// GradeRequest is the input message shared by the API, stream, and batch surfaces.
type GradeRequest struct {
	SessionID      string   `json:"session_id"`
	Turns          []Turn   `json:"turns"`
	PolicySnippets []string `json:"policy_snippets,omitempty"`
}
