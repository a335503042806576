package keywords

// stopwords is the fixed exclusion list used when extracting keywords.
// Besides common English function words it includes job-posting boilerplate
// ("experience", "responsibilities", "team", ...) so that matching is biased
// toward domain-specific terms instead of generic posting language.
var stopwords = map[string]struct{}{
	"about": {}, "above": {}, "across": {}, "after": {}, "against": {},
	"along": {}, "among": {}, "apart": {}, "around": {}, "at": {},
	"because": {}, "before": {}, "behind": {}, "being": {}, "below": {},
	"beneath": {}, "beside": {}, "between": {}, "beyond": {}, "both": {},
	"but": {}, "by": {}, "can": {}, "cannot": {}, "come": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "else": {}, "even": {}, "ever": {}, "every": {}, "for": {},
	"from": {}, "get": {}, "got": {}, "had": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "here": {}, "hers": {}, "herself": {}, "him": {},
	"himself": {}, "his": {}, "how": {}, "if": {}, "in": {}, "into": {},
	"is": {}, "it": {}, "its": {}, "itself": {}, "just": {}, "kept": {},
	"know": {}, "less": {}, "let": {}, "like": {}, "likely": {}, "make": {},
	"many": {}, "may": {}, "me": {}, "might": {}, "more": {}, "most": {},
	"much": {}, "must": {}, "my": {}, "myself": {}, "near": {}, "need": {},
	"no": {}, "nor": {}, "not": {}, "now": {}, "of": {}, "off": {},
	"often": {}, "on": {}, "once": {}, "one": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {}, "said": {}, "same": {}, "say": {}, "see": {},
	"shall": {}, "she": {}, "should": {}, "since": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "through": {}, "to": {}, "too": {}, "towards": {},
	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},
	"used": {}, "uses": {}, "very": {}, "want": {}, "was": {}, "way": {},
	"we": {}, "well": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "whose": {}, "why": {},
	"will": {}, "with": {}, "within": {}, "without": {}, "would": {},
	"yes": {}, "yet": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {},

	// Resume and job-posting boilerplate.
	"job": {}, "description": {}, "requirements": {}, "role": {},
	"overview": {}, "responsibilities": {}, "qualifications": {},
	"looking": {}, "seeking": {}, "ability": {}, "experience": {},
	"year": {}, "years": {}, "work": {}, "team": {}, "skills": {},
	"using": {}, "strong": {}, "proficient": {}, "knowledge": {},
	"creating": {}, "working": {}, "candidate": {}, "ideal": {},
	"opportunity": {},
}

// IsStopword reports whether the given lowercase token is on the exclusion list.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
