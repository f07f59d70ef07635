package engine

// Status is an athlete's derived health status.
type Status string

const (
	StatusPrima        Status = "Prima"
	StatusFit          Status = "Fit"
	StatusPemulihan    Status = "Pemulihan"
	StatusRehabilitasi Status = "Rehabilitasi"
)

// ValidStatus reports whether s is a member of the status enumeration. Used
// where a status arrives from outside the classifier (the manual override on
// athlete update).
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPrima, StatusFit, StatusPemulihan, StatusRehabilitasi:
		return true
	}
	return false
}

// Snapshot is one assessment's metrics grouped by category.
type Snapshot map[string]map[string]int

// Flatten collapses a snapshot into a metric-name → value map for rule
// evaluation. Safe only because metric names are unique across categories,
// which ValidateStructure enforces on the schema.
func Flatten(s Snapshot) map[string]int {
	flat := make(map[string]int)
	for _, metrics := range s {
		for name, value := range metrics {
			flat[name] = value
		}
	}
	return flat
}

// absent or empty categories score as a neutral 5
const neutralAverage = 5.0

func categoryAverage(metrics map[string]int) float64 {
	if len(metrics) == 0 {
		return neutralAverage
	}
	sum := 0
	for _, v := range metrics {
		sum += v
	}
	return float64(sum) / float64(len(metrics))
}

// Classify derives the athlete status from a single snapshot. Rules are
// checked in strict precedence order; rehabilitation findings dominate any
// fitness averages.
func Classify(s Snapshot) Status {
	rehab := s[CategoryRehab]
	if v, ok := rehab[MetricInjury]; ok && v >= 7 {
		return StatusRehabilitasi
	}
	if v, ok := rehab[MetricRecoveryProgress]; ok && v < 5 {
		return StatusPemulihan
	}

	avgPhysical := categoryAverage(s[CategoryPhysical])
	avgMental := categoryAverage(s[CategoryMental])

	if avgPhysical >= 8 && avgMental >= 8 {
		return StatusPrima
	}
	if avgPhysical >= 6 && avgMental >= 6 {
		return StatusFit
	}
	return StatusPemulihan
}
