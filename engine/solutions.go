package engine

import (
	"math/rand"
	"strconv"
)

// Solution is one concrete remediation plan from the static database.
type Solution struct {
	Solution      string   `json:"solution"`
	EstimatedCost string   `json:"estimated_cost"`
	TimeRequired  string   `json:"time_required"`
	Department    string   `json:"department"`
	Materials     []string `json:"materials"`
	Steps         []string `json:"steps"`
}

type Deterioration struct {
	Timeline         string   `json:"timeline"`
	SeverityIncrease string   `json:"severity_increase"`
	RiskFactors      []string `json:"risk_factors"`
	Warning          string   `json:"warning"`
}

type PastResolutions struct {
	AverageResolutionTime string `json:"average_resolution_time"`
	SuccessRate           string `json:"success_rate"`
	SimilarIssuesResolved int    `json:"similar_issues_resolved"`
	CitizenSatisfaction   string `json:"citizen_satisfaction"`
}

// SolutionAdvice is the full response for a solution lookup.
type SolutionAdvice struct {
	Solution
	PreventiveMeasures []string        `json:"preventive_measures"`
	Deterioration      Deterioration   `json:"deterioration_prediction"`
	PastResolutions    PastResolutions `json:"similar_past_resolutions"`
}

// The solution database is keyed by the engine's field-level issue
// types (pothole, streetlight_failure, ...), which are finer-grained
// than the reporting categories.
var solutionDatabase = map[string]map[string]Solution{
	"pothole": {
		"small": {
			Solution:      "Cold patch asphalt repair",
			EstimatedCost: "₹2,000 - ₹5,000",
			TimeRequired:  "2-4 hours",
			Department:    "Roads & Infrastructure",
			Materials:     []string{"Cold mix asphalt", "Hand tools"},
			Steps: []string{
				"Clean the pothole of debris and water",
				"Apply tack coat if necessary",
				"Fill with cold patch asphalt",
				"Compact using tamper or vehicle",
				"Allow to cure for 24 hours",
			},
		},
		"medium": {
			Solution:      "Hot mix asphalt repair",
			EstimatedCost: "₹8,000 - ₹15,000",
			TimeRequired:  "4-6 hours",
			Department:    "Roads & Infrastructure",
			Materials:     []string{"Hot mix asphalt", "Tack coat", "Compaction equipment"},
			Steps: []string{
				"Mark and secure the area",
				"Cut square edges around pothole",
				"Remove loose material",
				"Apply tack coat",
				"Fill with hot mix asphalt in layers",
				"Compact each layer thoroughly",
			},
		},
		"large": {
			Solution:      "Full-depth road repair",
			EstimatedCost: "₹25,000 - ₹50,000",
			TimeRequired:  "1-2 days",
			Department:    "Roads & Infrastructure",
			Materials:     []string{"Base course material", "Hot mix asphalt", "Equipment"},
			Steps: []string{
				"Traffic management and area marking",
				"Complete removal of damaged section",
				"Base course preparation and compaction",
				"Prime coat application",
				"Asphalt laying in multiple layers",
				"Quality testing and road marking",
			},
		},
	},
	"streetlight_failure": {
		"completely_dark": {
			Solution:      "Bulb/LED replacement and wiring check",
			EstimatedCost: "₹1,500 - ₹3,000",
			TimeRequired:  "1-2 hours",
			Department:    "Electricity Department",
			Materials:     []string{"LED bulbs", "Wiring materials", "Safety equipment"},
			Steps: []string{
				"Safety assessment and power cutoff",
				"Inspect wiring and connections",
				"Replace faulty bulb/LED",
				"Test electrical connections",
				"Restore power and verify operation",
			},
		},
		"flickering": {
			Solution:      "Ballast or starter replacement",
			EstimatedCost: "₹800 - ₹2,000",
			TimeRequired:  "1 hour",
			Department:    "Electricity Department",
			Materials:     []string{"Ballast/starter", "Tools"},
			Steps: []string{
				"Power cutoff",
				"Replace ballast or starter",
				"Check all connections",
				"Test operation",
			},
		},
	},
	"garbage_overflow": {
		"minor": {
			Solution:      "Immediate collection and bin cleaning",
			EstimatedCost: "₹500 - ₹1,000",
			TimeRequired:  "30 minutes - 1 hour",
			Department:    "Sanitation Department",
			Materials:     []string{"Collection vehicle", "Cleaning supplies"},
			Steps: []string{
				"Deploy collection team",
				"Clear overflow waste",
				"Clean and sanitize bin",
				"Schedule regular collection",
			},
		},
		"moderate": {
			Solution:      "Deep cleaning and additional bin placement",
			EstimatedCost: "₹2,000 - ₹5,000",
			TimeRequired:  "2-3 hours",
			Department:    "Sanitation Department",
			Materials:     []string{"Collection vehicle", "Additional bin", "Cleaning equipment"},
			Steps: []string{
				"Complete waste removal",
				"Area sanitization",
				"Install additional bin if needed",
				"Increase collection frequency",
			},
		},
		"severe": {
			Solution:      "Emergency cleanup and permanent solution",
			EstimatedCost: "₹10,000 - ₹20,000",
			TimeRequired:  "4-6 hours",
			Department:    "Sanitation Department",
			Materials:     []string{"Multiple bins", "Heavy equipment", "Sanitization"},
			Steps: []string{
				"Emergency response team deployment",
				"Complete area cleanup",
				"Multiple bin installation",
				"Daily monitoring setup",
				"Community awareness program",
			},
		},
	},
	"water_logging": {
		"shallow": {
			Solution:      "Drain cleaning and minor repair",
			EstimatedCost: "₹3,000 - ₹8,000",
			TimeRequired:  "2-4 hours",
			Department:    "Drainage Department",
			Materials:     []string{"Drain cleaning equipment", "Repair materials"},
			Steps: []string{
				"Identify drainage blockage",
				"Clear debris from drains",
				"Check drain functionality",
				"Minor repairs if needed",
			},
		},
		"deep": {
			Solution:      "Major drainage system repair",
			EstimatedCost: "₹50,000 - ₹1,00,000",
			TimeRequired:  "2-5 days",
			Department:    "Drainage Department",
			Materials:     []string{"Drainage pipes", "Heavy equipment", "Construction materials"},
			Steps: []string{
				"Survey drainage system",
				"Design repair solution",
				"Excavation and pipe replacement",
				"System testing",
				"Road restoration",
			},
		},
	},
	"traffic_signal_issue": {
		"not_working": {
			Solution:      "Signal controller and power supply check",
			EstimatedCost: "₹5,000 - ₹15,000",
			TimeRequired:  "2-4 hours",
			Department:    "Traffic Police / PWD",
			Materials:     []string{"Signal controller parts", "Electrical components"},
			Steps: []string{
				"Deploy traffic police for manual control",
				"Check power supply",
				"Inspect signal controller",
				"Replace faulty components",
				"Test all signal phases",
			},
		},
		"timing_issue": {
			Solution:      "Signal timing recalibration",
			EstimatedCost: "₹2,000 - ₹5,000",
			TimeRequired:  "1-2 hours",
			Department:    "Traffic Police",
			Materials:     []string{"Programming equipment"},
			Steps: []string{
				"Traffic flow analysis",
				"Reprogram signal timings",
				"Test multiple cycles",
				"Monitor and adjust",
			},
		},
	},
}

var preventiveMeasures = map[string][]string{
	"pothole": {
		"Regular road surface inspections",
		"Proper drainage maintenance",
		"Timely repair of small cracks",
		"Quality construction materials",
	},
	"streetlight_failure": {
		"Monthly maintenance checks",
		"LED upgrade for longer life",
		"Weather-proof installations",
		"Backup power systems",
	},
	"garbage_overflow": {
		"Increase bin capacity in high-density areas",
		"More frequent collection schedules",
		"Community awareness programs",
		"Waste segregation at source",
	},
	"water_logging": {
		"Regular drain cleaning",
		"Pre-monsoon preparations",
		"Proper road grading",
		"Drainage system upgrades",
	},
}

var deteriorationPatterns = map[string]Deterioration{
	"pothole": {
		Timeline:         "2-4 weeks",
		SeverityIncrease: "Can grow 2-3x in size",
		RiskFactors:      []string{"Heavy traffic", "Rain", "Temperature fluctuations"},
		Warning:          "Potholes can cause vehicle damage and accidents if not repaired promptly",
	},
	"streetlight_failure": {
		Timeline:         "Immediate concern",
		SeverityIncrease: "Safety risk increases at night",
		RiskFactors:      []string{"Accidents", "Crime", "Pedestrian safety"},
		Warning:          "Dark areas pose immediate safety risks",
	},
	"garbage_overflow": {
		Timeline:         "1-2 days",
		SeverityIncrease: "Health hazard escalation",
		RiskFactors:      []string{"Disease spread", "Pest infestation", "Odor"},
		Warning:          "Can lead to public health issues and environmental damage",
	},
	"water_logging": {
		Timeline:         "Hours to days",
		SeverityIncrease: "Can cause structural damage",
		RiskFactors:      []string{"Foundation damage", "Traffic disruption", "Disease spread"},
		Warning:          "Standing water can damage infrastructure and spread diseases",
	},
}

// SuggestSolution looks up the remediation plan for an issue type and
// subcategory, falling back to a generic assessment entry, and
// attaches preventive measures, a deterioration outlook, and
// simulated resolution stats.
func SuggestSolution(issueType, subcategory string) SolutionAdvice {
	solution, ok := solutionDatabase[issueType][subcategory]
	if !ok {
		solution = Solution{
			Solution:      "Standard " + issueType + " resolution procedure",
			EstimatedCost: "To be assessed",
			TimeRequired:  "To be determined",
			Department:    "Municipal Corporation",
			Materials:     []string{"To be determined"},
			Steps:         []string{"Assessment required", "Solution to be determined"},
		}
	}

	measures, ok := preventiveMeasures[issueType]
	if !ok {
		measures = []string{"Regular maintenance and monitoring"}
	}

	deterioration, ok := deteriorationPatterns[issueType]
	if !ok {
		deterioration = Deterioration{
			Timeline:         "Varies",
			SeverityIncrease: "Requires monitoring",
			RiskFactors:      []string{"To be assessed"},
			Warning:          "Issue should be addressed promptly",
		}
	}

	return SolutionAdvice{
		Solution:           solution,
		PreventiveMeasures: measures,
		Deterioration:      deterioration,
		PastResolutions: PastResolutions{
			AverageResolutionTime: "3-5 days",
			SuccessRate:           "87%",
			SimilarIssuesResolved: 50 + rand.Intn(150),
			CitizenSatisfaction:   strconv.Itoa(75+rand.Intn(20)) + "%",
		},
	}
}
