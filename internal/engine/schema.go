package engine

import "fmt"

// Metric categories and the metric names the classifier keys on.
const (
	CategoryRehab    = "Rehabilitasi"
	CategoryPhysical = "Pemeriksaan Fisik"
	CategoryMental   = "Kesehatan Mental"
	CategorySleep    = "Kualitas Tidur"
	CategoryRecovery = "Recovery"
	CategoryActivity = "Tingkat Aktivitas"

	MetricInjury           = "Cedera"
	MetricRecoveryProgress = "Pemulihan"
	MetricSleepHours       = "Rata-rata Jam Tidur"
)

// MetricStructure is the fixed assessment form: which metrics exist and which
// category each belongs to. It is not athlete-specific and does not change at
// runtime.
var MetricStructure = map[string][]string{
	CategoryRehab:    {MetricInjury, MetricRecoveryProgress},
	CategoryPhysical: {"Fleksibilitas", "Kekuatan", "Daya Tahan", "Kecepatan", "Keseimbangan", "Kelincahan"},
	CategoryMental:   {"Stress", "Motivasi", "Percaya Diri", "Kohesi Tim", "Fokus"},
	CategorySleep:    {MetricSleepHours, "Kualitas", "Konsistensi"},
	CategoryRecovery: {"Tingkat Recovery"},
	CategoryActivity: {"Harian", "Latihan", "Pertandingan", "Recovery"},
}

// MaxMetricValue returns the upper bound of a metric's scale. Everything is
// 0-10 except average sleep hours, recorded as whole hours up to 12.
func MaxMetricValue(name string) int {
	if name == MetricSleepHours {
		return 12
	}
	return 10
}

// ValidateStructure checks the precondition Flatten depends on: no metric name
// may appear in more than one category. Run against MetricStructure at server
// start so a schema edit cannot silently corrupt rule evaluation.
func ValidateStructure(structure map[string][]string) error {
	seen := make(map[string]string)
	for category, names := range structure {
		for _, name := range names {
			if other, dup := seen[name]; dup && other != category {
				return fmt.Errorf("metric %q appears in both %q and %q", name, other, category)
			}
			seen[name] = category
		}
	}
	return nil
}

// ValidateSnapshot rejects snapshots that do not fit the fixed form: unknown
// categories or metrics, or values outside the metric's scale.
func ValidateSnapshot(s Snapshot) error {
	if len(s) == 0 {
		return fmt.Errorf("snapshot has no metrics")
	}
	for category, metrics := range s {
		known, ok := MetricStructure[category]
		if !ok {
			return fmt.Errorf("unknown metric category %q", category)
		}
		for name, value := range metrics {
			if !containsName(known, name) {
				return fmt.Errorf("unknown metric %q in category %q", name, category)
			}
			if max := MaxMetricValue(name); value < 0 || value > max {
				return fmt.Errorf("metric %q value %d out of range [0,%d]", name, value, max)
			}
		}
	}
	return nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
