package lexicon

import (
	"regexp"
	"strings"

	"github.com/pitchlab/callgrader/internal/models"
)

// ObjectionPattern pairs one objection category with its trigger regex.
// Detection evaluates the patterns in slice order and the first match wins,
// so the order below is part of the scoring contract.
type ObjectionPattern struct {
	Label   models.ObjectionLabel
	Pattern *regexp.Regexp
}

// Lexicon holds every fixed word/pattern table the grader matches against.
// Instances are treated as immutable after construction; tuning happens by
// building a new Lexicon (see Load), never by mutating a shared one.
type Lexicon struct {
	Fillers        []string
	Apologies      []string
	Interrogatives []string

	Objections []ObjectionPattern

	// Objection-handling step phrase lists (presence, not count).
	Ack     []string
	Clarify []string
	Address []string
	Confirm []string

	Opener    *regexp.Regexp
	Discovery *regexp.Regexp
	Value     *regexp.Regexp
	Price     *regexp.Regexp
	Close     *regexp.Regexp
}

// Default returns the built-in English tables.
func Default() *Lexicon {
	return &Lexicon{
		Fillers: []string{
			"um", "uh", "like", "you know", "kinda", "sorta",
			"basically", "literally", "i mean", "right?",
		},
		Apologies: []string{
			"sorry", "apologies", "my bad", "excuse me", "pardon", "go ahead",
		},
		Interrogatives: []string{
			"who", "what", "when", "where", "why", "how", "which",
			"do", "does", "did", "can", "could", "would", "will", "should",
			"is", "are", "was", "were", "have", "has", "may", "might", "am",
		},
		Objections: []ObjectionPattern{
			{models.LabelPrice, regexp.MustCompile(`(?i)(too (expensive|much)|can'?t afford|cannot afford|\bprice\b|\bcosts?\b|\bbudget\b|\bcheaper\b)`)},
			{models.LabelTiming, regexp.MustCompile(`(?i)(not a good time|bad time|\bbusy\b|maybe later|next (month|year)|call (me )?back|come back)`)},
			{models.LabelSpouse, regexp.MustCompile(`(?i)(my (wife|husband|spouse|partner)|talk it over|ask my|have to discuss|we decide together)`)},
			{models.LabelTrust, regexp.MustCompile(`(?i)(\bscam\b|don'?t trust|too good to be true|never heard of|\blicensed\b|\binsured\b|prove it)`)},
			{models.LabelCompetitor, regexp.MustCompile(`(?i)(another (company|quote|guy)|other (company|companies|quotes|bids)|already (have|work with|using) some|\bcompetitor\b|gave us a quote)`)},
			{models.LabelNotInterested, regexp.MustCompile(`(?i)(not interested|no thanks|no thank you|don'?t need|do not need|go away|not for us)`)},
		},
		Ack: []string{
			"i hear you", "i understand", "totally fair", "that makes sense",
			"i get it", "great question", "i appreciate", "a lot of people feel",
		},
		Clarify: []string{
			"what specifically", "tell me more", "help me understand",
			"when you say", "just so i understand", "what part", "is it the",
			"can i ask what",
		},
		Address: []string{
			"what i can do", "the reason", "most of our customers",
			"what we've found", "here's how", "let me explain", "compared to",
			"actually saves", "covered by", "warranty", "no obligation",
		},
		Confirm: []string{
			"does that help", "does that make sense", "how does that sound",
			"did that answer", "are we good", "does that address",
			"put that concern to rest", "fair enough?",
		},
		Opener:    regexp.MustCompile(`(?i)\b(hi|hey|hello|good (morning|afternoon|evening)|my name is|i'm \w+ (with|from))\b`),
		Discovery: regexp.MustCompile(`(?i)\b(how (long|old|much|many)|what (do|are|kind) you|have you (ever|had|noticed|thought)|when was the last|who (takes care|handles)|currently)\b`),
		Value:     regexp.MustCompile(`(?i)\b(save|savings|protect|peace of mind|value|benefit|warranty|guarantee|energy bill|curb appeal)\b`),
		Price:     regexp.MustCompile(`(?i)(\$\d|\b(price|pricing|cost|per month|monthly|investment|quote|estimate|financing)\b)`),
		Close:     regexp.MustCompile(`(?i)\b(get you (started|scheduled|on the)|sign|schedule|move forward|lock (that|this|it) in|book (you|an)|set (you|that) up|appointment|go ahead and)\b`),
	}
}

// ContainsAny reports whether any phrase in the list occurs in text.
// Matching is case-insensitive substring on a space-normalized copy, which
// lets multi-word phrases like "i hear you" match across punctuation.
func ContainsAny(text string, phrases []string) bool {
	normalized := Normalize(text)
	for _, p := range phrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

// CountHits counts the total occurrences of every phrase in the list.
func CountHits(text string, phrases []string) int {
	normalized := " " + Normalize(text) + " "
	count := 0
	for _, p := range phrases {
		if strings.ContainsAny(p, "?") {
			count += strings.Count(normalized, p)
			continue
		}
		count += strings.Count(normalized, " "+p+" ")
	}
	return count
}

var nonWord = regexp.MustCompile(`[^a-z0-9'? ]+`)
var spaces = regexp.MustCompile(` +`)

// Normalize lowercases text and strips punctuation that would break
// phrase matching. Question marks survive so "fair enough?" stays matchable.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	lower = nonWord.ReplaceAllString(lower, " ")
	return strings.TrimSpace(spaces.ReplaceAllString(lower, " "))
}
