// Package salary estimates compensation ranges from a static, versioned
// lookup table keyed by the same role enumeration the skill-gap scorer
// uses. No market data is fetched at runtime.
package salary

import (
	"math"
	"strings"

	"skillsync-ai/internal/domain/skillgap"
)

// TableVersion identifies the band and factor tables below.
const TableVersion = 1

// Band is an annual USD range for a role at intermediate level.
type Band struct {
	Min    int
	Median int
	Max    int
}

var baseBands = map[string]Band{
	"frontend":       {Min: 55000, Median: 85000, Max: 120000},
	"backend":        {Min: 60000, Median: 95000, Max: 135000},
	"fullstack":      {Min: 60000, Median: 95000, Max: 140000},
	"data-scientist": {Min: 70000, Median: 105000, Max: 150000},
	"devops":         {Min: 65000, Median: 100000, Max: 145000},
	"mobile":         {Min: 60000, Median: 90000, Max: 130000},
	"ml-engineer":    {Min: 80000, Median: 120000, Max: 170000},
}

var levelMultipliers = map[skillgap.ExperienceLevel]float64{
	skillgap.LevelBeginner:     0.70,
	skillgap.LevelIntermediate: 1.00,
	skillgap.LevelAdvanced:     1.35,
}

// Location factors form a closed set; anything unrecognized is treated as
// remote (factor 1.0) rather than rejected, matching the lenient-on-text
// policy of the scorer.
var locationFactors = map[string]float64{
	"remote":        1.00,
	"united-states": 1.15,
	"europe":        0.95,
	"asia":          0.80,
	"latam":         0.75,
}

type Estimate struct {
	Currency       string
	Min            int
	Median         int
	Max            int
	LocationFactor float64
}

// EstimateSalary scales the role's base band by experience level and
// location. Unknown roles fail with skillgap.ErrUnknownRole; everything
// else is normalized and processed.
func EstimateSalary(roleID string, level skillgap.ExperienceLevel, location string) (Estimate, error) {
	role, err := skillgap.LookupRole(roleID)
	if err != nil {
		return Estimate{}, err
	}

	band := baseBands[role.ID]

	mult, ok := levelMultipliers[level]
	if !ok {
		mult = levelMultipliers[skillgap.LevelIntermediate]
	}

	factor, ok := locationFactors[strings.ToLower(strings.TrimSpace(location))]
	if !ok {
		factor = locationFactors["remote"]
	}

	scale := mult * factor
	return Estimate{
		Currency:       "USD",
		Min:            scaled(band.Min, scale),
		Median:         scaled(band.Median, scale),
		Max:            scaled(band.Max, scale),
		LocationFactor: factor,
	}, nil
}

func scaled(amount int, factor float64) int {
	return int(math.Round(float64(amount) * factor))
}
