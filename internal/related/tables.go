package related

// coreTagWeights ranks the topics that should dominate similarity.
// Higher wins when a tool carries more than one of them.
var coreTagWeights = map[string]int{
	"retirement":        98,
	"pension":           96,
	"401k":              95,
	"mortgage":          86,
	"refinance":         84,
	"home-equity":       82,
	"rent":              80,
	"auto-loan":         78,
	"student-loan":      77,
	"credit-card":       76,
	"debt":              74,
	"loan":              72,
	"savings":           70,
	"investment":        68,
	"compound-interest": 66,
	"inflation":         64,
	"income-tax":        62,
	"sales-tax":         60,
	"vat":               59,
	"tax":               58,
	"salary":            56,
	"paycheck":          55,
	"exchange-rate":     54,
	"currency":          53,
	"budget":            50,
	"profit-margin":     48,
	"markup":            47,
	"break-even":        46,
	"roi":               45,
	"depreciation":      44,
	"payroll":           42,
	"bmi":               40,
	"calories":          38,
	"body-fat":          37,
	"pregnancy":         36,
	"heart-rate":        35,
	"hydration":         34,
	"sleep":             33,
	"tip":               30,
	"discount":          28,
	"percentage":        26,
	"fuel":              24,
	"age":               22,
	"date":              20,
	"unit-conversion":   18,
}

// stopTags are too generic to signal that two tools are related.
var stopTags = map[string]struct{}{
	"calculator":  {},
	"calculators": {},
	"calc":        {},
	"tool":        {},
	"tools":       {},
	"online":      {},
	"free":        {},
	"fee":         {},
	"fees":        {},
	"cost":        {},
	"costs":       {},
	"estimate":    {},
	"estimator":   {},
	"money":       {},
}

// CoreTagWeight returns the curated weight of a normalized tag, or 0
// when the tag is not a core topic.
func CoreTagWeight(tag string) int {
	return coreTagWeights[tag]
}

// CoreTagWeights returns a copy of the core tag weight table.
func CoreTagWeights() map[string]int {
	out := make(map[string]int, len(coreTagWeights))
	for tag, weight := range coreTagWeights {
		out[tag] = weight
	}
	return out
}

// IsStopTag reports whether a normalized tag is ignored for scoring.
func IsStopTag(tag string) bool {
	_, ok := stopTags[tag]
	return ok
}

// StopTags returns the stop tags in no particular order.
func StopTags() []string {
	out := make([]string, 0, len(stopTags))
	for tag := range stopTags {
		out = append(out, tag)
	}
	return out
}
