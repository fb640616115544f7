package match

// Tier is the traffic-light confidence classification of a match
type Tier string

const (
	// TierGreen marks high-confidence matches that are auto-acceptable
	TierGreen Tier = "GREEN"
	// TierPurple marks matches that need manual review
	TierPurple Tier = "PURPLE"
	// TierRed marks records with no reliable match
	TierRed Tier = "RED"
)

// shortDistinctiveLen: query names whose distinctive keyword is shorter
// than this produce spurious high scores, so near-perfect scores are
// downgraded to manual review
const shortDistinctiveLen = 4

// Classify maps a final integer score and the short-distinctive flag to
// a confidence tier. A perfect 100 is GREEN unconditionally; 95-99 is
// GREEN unless the distinctive keyword is short; 50-94 is PURPLE;
// anything below is RED.
func Classify(score int, distinctiveShort bool) Tier {
	switch {
	case score >= 100:
		return TierGreen
	case score >= 95:
		if distinctiveShort {
			return TierPurple
		}
		return TierGreen
	case score >= 50:
		return TierPurple
	default:
		return TierRed
	}
}
