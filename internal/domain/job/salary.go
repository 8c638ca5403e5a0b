package job

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/honeycarbs/career-hunter/internal/domain"
)

var salaryCleaner = strings.NewReplacer(",", "", " ", "")

// ParseSalaryRange parses "140k-200k", "150.5k-200k" or "100,000-200,000"
func ParseSalaryRange(text string) (domain.SalaryRange, error) {
	clean := strings.ToLower(salaryCleaner.Replace(text))

	parts := strings.Split(clean, "-")
	if len(parts) != 2 {
		return domain.SalaryRange{}, fmt.Errorf("%w: salary must be in format 'min-max' (e.g. 140k-200k)", domain.ErrInvalidFormat)
	}

	lo, err := parseSalaryAmount(parts[0])
	if err != nil {
		return domain.SalaryRange{}, err
	}
	hi, err := parseSalaryAmount(parts[1])
	if err != nil {
		return domain.SalaryRange{}, err
	}

	return domain.SalaryRange{Min: lo, Max: hi}, nil
}

func parseSalaryAmount(s string) (int, error) {
	if strings.Contains(s, "k") {
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, "k", ""), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: invalid salary number format %q", domain.ErrInvalidFormat, s)
		}
		v := math.Trunc(f * 1000)
		if v >= math.MaxInt64 || v <= math.MinInt64 {
			return 0, fmt.Errorf("%w: salary %q out of range", domain.ErrInvalidFormat, s)
		}
		return int(v), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid salary number format %q", domain.ErrInvalidFormat, s)
	}
	return n, nil
}
