// ABOUTME: Fixed English stop-word list used by the vectorizer
// ABOUTME: Membership is part of the build contract; changing it requires rebuilding artifacts
package core

import "strings"

// stopWords is the fixed set of common English words excluded from the
// vocabulary. The list is frozen: the same corpus and the same list must
// always produce the same vocabulary.
var stopWords = buildStopWordSet(`
a about above across after afterwards again against all almost alone along
already also although always am among amongst an and another any anyhow
anyone anything anyway anywhere are around as at back be became because
become becomes becoming been before beforehand behind being below beside
besides between beyond both bottom but by call can cannot could did do does
doing done down due during each eight either eleven else elsewhere empty
enough even ever every everyone everything everywhere except few fifteen
fifty first five for former formerly forty four from front full further get
give go had has have he hence her here hereafter hereby herein hereupon hers
herself him himself his how however hundred i if in indeed into is it its
itself just keep last latter latterly least less many may me meanwhile might
mine more moreover most mostly much must my myself name namely neither never
nevertheless next nine no nobody none nor not nothing now nowhere of off
often on once one only onto or other others otherwise our ours ourselves out
over own part per perhaps please put rather re s same see seem seemed
seeming seems serious several she should since six sixty so some somehow
someone something sometime sometimes somewhere still such ten than that the
their theirs them themselves then thence there thereafter thereby therefore
therein thereupon these they third this those though three through
throughout thru thus to together too top toward towards twelve twenty two
under until up upon us very via was we well were what whatever when whence
whenever where whereafter whereas whereby wherein whereupon wherever whether
which while whither who whoever whole whom whose why will with within
without would yet you your yours yourself yourselves
`)

func buildStopWordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// IsStopWord reports whether a token is on the fixed stop-word list.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
