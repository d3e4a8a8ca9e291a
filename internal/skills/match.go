package skills

// Match partitions a job's required skills against a candidate's skills.
// Matched holds the candidate skills (candidate order, deduplicated) that
// the job also requires; Missing holds the job skills (job order) the
// candidate lacks. Membership is case-normalized, so together the two
// slices always cover exactly the job's requirement set.
func Match(candidateSkills, jobSkills []string) (matched, missing []string) {
	jobSet := toSet(jobSkills)

	matched = make([]string, 0, len(candidateSkills))
	seen := make(map[string]bool, len(candidateSkills))
	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		key := Normalize(skill)
		candidateSet[key] = true
		if jobSet[key] && !seen[key] {
			seen[key] = true
			matched = append(matched, skill)
		}
	}

	missing = make([]string, 0, len(jobSkills))
	seenMissing := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		key := Normalize(skill)
		if candidateSet[key] || seenMissing[key] {
			continue
		}
		seenMissing[key] = true
		missing = append(missing, skill)
	}

	return matched, missing
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[Normalize(name)] = true
	}
	return set
}
