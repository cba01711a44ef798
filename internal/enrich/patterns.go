package enrich

import "regexp"

// Package-level compiled patterns for the enrichment detectors. Rep and
// homeowner text is lowercased before matching, so the patterns stay
// lowercase except capsWords, which runs on the raw text.
var (
	capsWords = regexp.MustCompile(`\b[A-Z]{3,}\b`)

	deflection = regexp.MustCompile(`(depends on|we'll get to (the )?price|before we talk (about )?price|let me show you first|price isn't the point|get to that in a (second|minute))`)
	pressure   = regexp.MustCompile(`(sign today|now or never|won'?t last|must decide|final offer|only (good )?today|last chance|before i leave)`)
	rude       = regexp.MustCompile(`(shut up|stupid|idiot|don'?t waste my|are you deaf|whatever, man)`)

	positiveClose = regexp.MustCompile(`(let'?s do it|sign me up|sounds good|we'?re in|yes,? let'?s|where do i sign|go ahead and sign|ok,? i'?m in|that works for (me|us))`)
	negativeClose = regexp.MustCompile(`(not interested|no thanks|no thank you|please leave|get off my|don'?t come back|goodbye|we'?re done here)`)

	competitor    = regexp.MustCompile(`(another (company|quote|guy)|other (company|companies|quotes|bids)|competitor|already (have|work with|using) some)`)
	decisionMaker = regexp.MustCompile(`(who (makes|would make) the decision|both of you|your (wife|husband|spouse|partner)( be)? (home|available)|decision.?maker)`)
	discount      = regexp.MustCompile(`(discount|\d+% off|knock off|price break|special (deal|rate)|waive the)`)
	financing     = regexp.MustCompile(`(financing|payment plan|per month|monthly payment|zero down|no money down|interest.?free)`)
	warranty      = regexp.MustCompile(`(warranty|guarantee[ds]?|covered for \d+ years)`)
	appointment   = regexp.MustCompile(`(appointment|schedule|tuesday|wednesday|thursday|friday|monday|morning or afternoon|what time works)`)
	followUp      = regexp.MustCompile(`(follow up|check back|swing by (next|later)|call you (next|tomorrow|later)|touch base)`)

	empathy = regexp.MustCompile(`(i understand|i hear you|that makes sense|i get it|totally fair|i appreciate|sounds frustrating)`)
)

type technique struct {
	name    string
	pattern *regexp.Regexp
}

// closeTechniques is evaluated in order; the first match is the dominant
// technique.
var closeTechniques = []technique{
	{"assumptive", regexp.MustCompile(`(when we get you|i'?ll put you down|we'?ll get you scheduled|once you'?re signed up)`)},
	{"trial", regexp.MustCompile(`(how does that sound|what do you think|would that work for you|how do you feel about)`)},
	{"direct", regexp.MustCompile(`(are you ready to|can we sign|would you like to move forward|shall we get started)`)},
	{"alternative", regexp.MustCompile(`(morning or afternoon|this week or next|tuesday or thursday|card or check)`)},
	{"urgency", regexp.MustCompile(`(only today|limited time|expires|price goes up|spots left|last chance)`)},
}
