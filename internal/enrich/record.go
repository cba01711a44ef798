package enrich

// FlatRecord is the denormalized view of one graded session, shaped for a
// flat persistence sink (one row per call, no nesting). Every field has a
// documented default so the record is always complete.
type FlatRecord struct {
	SessionID  string `json:"session_id"`
	FinalScore int    `json:"final_score"`
	Letter     string `json:"letter_grade"`
	Band       string `json:"band"`

	Outcome    string `json:"outcome"` // SUCCESS, FAILURE, or PARTIAL
	SaleClosed bool   `json:"sale_closed"`
	Summary    string `json:"summary"`

	EnergyLevel    string `json:"energy_level"` // low, medium, or high
	CloseTechnique string `json:"close_technique,omitempty"`

	PricingDeflections int  `json:"pricing_deflections"`
	PressureTactics    bool `json:"pressure_tactics"`
	Rudeness           bool `json:"rudeness"`

	ObjectionCount     int    `json:"objection_count"`
	ObjectionLabels    string `json:"objection_labels,omitempty"`
	ObjectionsResolved int    `json:"objections_resolved"`

	CompetitorMentioned bool `json:"competitor_mentioned"`
	DecisionMakerCheck  bool `json:"decision_maker_check"`
	DiscountOffered     bool `json:"discount_offered"`
	FinancingDiscussed  bool `json:"financing_discussed"`
	WarrantyMentioned   bool `json:"warranty_mentioned"`
	AppointmentSet      bool `json:"appointment_set"`
	FollowUpScheduled   bool `json:"follow_up_scheduled"`

	HomeownerQuestions   int     `json:"homeowner_questions"`
	EmpathyPhrases       int     `json:"empathy_phrases"`
	ComplianceViolations int     `json:"compliance_violations"`
	TalkRatioRep         float64 `json:"talk_ratio_rep"`
	InterruptsPerMinute  float64 `json:"interrupts_per_minute"`
	CallDurationMs       int64   `json:"call_duration_ms"`
}
