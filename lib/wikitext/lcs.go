package wikitext

// LCS returns the longest contiguous substring shared by a and b. When several
// substrings share the maximal length the one starting earliest in a wins.
// The empty string is returned when a and b have no rune in common.
func LCS(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return ""
	}

	// prev[j] is the length of the common suffix of ra[:i-1] and rb[:j]
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	bestLen, bestEnd := 0, 0

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] != rb[j-1] {
				cur[j] = 0
				continue
			}

			cur[j] = prev[j-1] + 1
			if cur[j] > bestLen {
				bestLen = cur[j]
				bestEnd = i
			}
		}
		prev, cur = cur, prev
	}

	return string(ra[bestEnd-bestLen : bestEnd])
}
