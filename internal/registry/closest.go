package registry

// maxSuggestDistance is the maximum edit distance for a
// registered name to be suggested in place of an unknown one.
const maxSuggestDistance = 2

func levenshtein(str string, tgt string) int {
	src, dst := []rune(str), []rune(tgt)

	if len(src) == 0 {
		return len(dst)
	}

	if len(dst) == 0 {
		return len(src)
	}

	dists := make([][]int, len(src)+1)
	for i := range dists {
		dists[i] = make([]int, len(dst)+1)
		dists[i][0] = i
	}

	for j := range dists[0] {
		dists[0][j] = j
	}

	for sidx, sc := range src {
		for tidx, tc := range dst {
			if sc == tc {
				dists[sidx+1][tidx+1] = dists[sidx][tidx]
			} else {
				dists[sidx+1][tidx+1] = dists[sidx][tidx] + 1
				if dists[sidx+1][tidx] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx+1][tidx] + 1
				}
				if dists[sidx][tidx+1] < dists[sidx+1][tidx+1] {
					dists[sidx+1][tidx+1] = dists[sidx][tidx+1] + 1
				}
			}
		}
	}

	return dists[len(src)][len(dst)]
}

func closestChoice(name string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	minidx := -1
	mindist := -1

	for i, c := range choices {
		l := levenshtein(name, c)

		if minidx < 0 || l < mindist {
			mindist = l
			minidx = i
		}
	}

	return choices[minidx], mindist
}

// Suggest returns the registered key closest to name, if one is
// close enough to be a likely typo. Hidden options are never suggested.
func (r *Registry) Suggest(name string) (string, bool) {
	var visible []string

	for _, key := range r.Names() {
		if !r.options[key].Hidden {
			visible = append(visible, key)
		}
	}

	match, dist := closestChoice(name, visible)
	if match == "" || dist > maxSuggestDistance {
		return "", false
	}

	return match, true
}
