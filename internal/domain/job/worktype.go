package job

import (
	"regexp"
	"strings"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

var (
	remotePattern     = regexp.MustCompile(`(?i)\b(remote|work\s*from\s*home|wfh)\b`)
	remoteWordPattern = regexp.MustCompile(`(?i)\bremote\b`)
	hybridPattern     = regexp.MustCompile(`(?i)\bhybrid\b`)
)

const (
	LabelRemote = "remote"
	LabelHybrid = "hybrid"
)

// Classify derives the remote flag and arrangement label from a location string.
// "work from home" alone marks the job remote but leaves the label empty.
func Classify(location string) (isRemote bool, label string) {
	if location == "" {
		return false, ""
	}

	isRemote = remotePattern.MatchString(location)

	switch {
	case remoteWordPattern.MatchString(location):
		label = LabelRemote
	case hybridPattern.MatchString(location):
		label = LabelHybrid
	}

	return isRemote, label
}

// MatchesWorkType reports whether a listing passes the work-type filter
func MatchesWorkType(j domain.JobListing, wt domain.WorkType) bool {
	switch wt {
	case domain.WorkTypeAll, "":
		return true
	case domain.WorkTypeRemote:
		return isRemoteListing(j)
	case domain.WorkTypeHybrid:
		return hybridPattern.MatchString(workTypeText(j))
	case domain.WorkTypeOnsite:
		return !isRemoteListing(j) && !hybridPattern.MatchString(workTypeText(j))
	default:
		return false
	}
}

// FilterByWorkType keeps the listings matching wt, preserving order
func FilterByWorkType(jobs []domain.JobListing, wt domain.WorkType) []domain.JobListing {
	if wt == domain.WorkTypeAll || wt == "" {
		return jobs
	}

	out := make([]domain.JobListing, 0, len(jobs))
	for _, j := range jobs {
		if MatchesWorkType(j, wt) {
			out = append(out, j)
		}
	}
	return out
}

func isRemoteListing(j domain.JobListing) bool {
	return j.Remote() || remotePattern.MatchString(workTypeText(j))
}

func workTypeText(j domain.JobListing) string {
	return strings.Join([]string{j.WorkArrangement, j.Location, j.Title, j.Description}, " ")
}
