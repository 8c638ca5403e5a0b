package domain

import (
	"fmt"
	"strings"
)

// NotAvailable marks a listing field the source did not provide
const NotAvailable = "N/A"

const (
	DefaultCountry  = "AU"
	DefaultLocation = "Australia"
	DefaultLimit    = 25
	MinLimit        = 1
	MaxLimit        = 100
)

// WorkType is the work arrangement filter of a search
type WorkType string

const (
	WorkTypeAll    WorkType = "all"
	WorkTypeRemote WorkType = "remote"
	WorkTypeHybrid WorkType = "hybrid"
	WorkTypeOnsite WorkType = "onsite"
)

// ParseWorkType accepts the filter names case-insensitively; empty means all
func ParseWorkType(s string) (WorkType, error) {
	switch wt := WorkType(strings.ToLower(strings.TrimSpace(s))); wt {
	case "":
		return WorkTypeAll, nil
	case WorkTypeAll, WorkTypeRemote, WorkTypeHybrid, WorkTypeOnsite:
		return wt, nil
	default:
		return "", fmt.Errorf("%w: work_type must be one of all, remote, hybrid, onsite (got %q)", ErrInvalidQuery, s)
	}
}

// SearchQuery describes one job search request
type SearchQuery struct {
	Role     string
	Country  string
	Location string
	Salary   string
	WorkType WorkType
	Limit    int
}

// WithDefaults fills unset optional fields
func (q SearchQuery) WithDefaults() SearchQuery {
	if strings.TrimSpace(q.Country) == "" {
		q.Country = DefaultCountry
	}
	if strings.TrimSpace(q.Location) == "" {
		q.Location = DefaultLocation
	}
	// canonical form keeps filtering and cache keys in agreement; unknown values are left for Validate
	if wt, err := ParseWorkType(string(q.WorkType)); err == nil {
		q.WorkType = wt
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// Validate checks every field except the salary text, which is parsed separately
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Role) == "" {
		return fmt.Errorf("%w: role is required", ErrInvalidQuery)
	}
	if strings.TrimSpace(q.Salary) == "" {
		return fmt.Errorf("%w: salary is required", ErrInvalidQuery)
	}
	if q.Limit < MinLimit || q.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between %d and %d (got %d)", ErrInvalidQuery, MinLimit, MaxLimit, q.Limit)
	}
	if _, err := ParseWorkType(string(q.WorkType)); err != nil {
		return err
	}
	return nil
}

// SalaryRange is a parsed salary band; Min may exceed Max
type SalaryRange struct {
	Min int
	Max int
}

func (r SalaryRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// JobListing is the normalized job posting returned by every source
type JobListing struct {
	ID              string `json:"id"`
	Source          string `json:"site"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	Location        string `json:"location,omitempty"`
	DatePosted      string `json:"date_posted,omitempty"`
	JobURL          string `json:"job_url"`
	SalaryRange     string `json:"salary_range,omitempty"`
	CompanyURL      string `json:"company_url,omitempty"`
	Description     string `json:"description,omitempty"`
	IsRemote        *bool  `json:"is_remote,omitempty"`
	WorkArrangement string `json:"work_from_home_type,omitempty"`
}

// HasTitle reports whether the title can take part in relevance matching
func (j JobListing) HasTitle() bool {
	t := strings.TrimSpace(j.Title)
	return t != "" && t != NotAvailable
}

// Remote dereferences the optional remote flag
func (j JobListing) Remote() bool {
	return j.IsRemote != nil && *j.IsRemote
}

// CloneListings copies the slice and the pointed-to remote flags
func CloneListings(in []JobListing) []JobListing {
	if in == nil {
		return nil
	}
	out := make([]JobListing, len(in))
	copy(out, in)
	for i := range out {
		if out[i].IsRemote != nil {
			v := *out[i].IsRemote
			out[i].IsRemote = &v
		}
	}
	return out
}
