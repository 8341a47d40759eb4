package web

// ExampleTerms are the shortcut terms offered on the lookup page.
var ExampleTerms = []string{
	"Tachycardia",
	"Hypertension",
	"Anemia",
	"Osteoporosis",
	"Bradycardia",
	"Dyspnea",
	"Arrhythmia",
	"Edema",
}
