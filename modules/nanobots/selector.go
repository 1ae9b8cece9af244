package nanobots

// Better reports whether a beats b: more covering sensors first, then the
// origin closest to (0,0,0), then the lexicographically smallest origin.
func Better(a, b Region) bool {
	if a.Count() != b.Count() {
		return a.Count() > b.Count()
	}

	da, db := a.Bounds.Origin.Norm(), b.Bounds.Origin.Norm()
	if da != db {
		return da < db
	}
	return a.Bounds.Origin.Less(b.Bounds.Origin)
}

// SelectBest returns the best candidate. It returns false when there is no
// candidate.
func SelectBest(candidates []Region) (Region, bool) {
	if len(candidates) == 0 {
		return Region{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if Better(c, best) {
			best = c
		}
	}
	return best, true
}
