package entity

// AI model catalog categories.
const (
	AIModelCategoryDiagnosis = "diagnosis"
	AIModelCategoryImaging   = "imaging"
	AIModelCategoryTreatment = "treatment"
	AIModelCategoryPharmacy  = "pharmacy"
	AIModelCategoryResearch  = "research"
)

// AIModel is an entry of the AI model catalog page.
type AIModel struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Specs       AIModelSpecs  `json:"specs"`
	Metrics     []ModelMetric `json:"metrics"`
	UseCases    []string      `json:"useCases"`
	Limitations []string      `json:"limitations"`
	LaunchURL   string        `json:"launchUrl"`
}

type AIModelSpecs struct {
	Type         string `json:"type"`
	TrainingData string `json:"trainingData"`
	LastUpdated  string `json:"lastUpdated"`
	APIVersion   string `json:"apiVersion"`
}

// ModelMetric is one line of the performance table, kept in display order.
type ModelMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (m AIModel) SearchFields() []string {
	return []string{m.Title, m.Description}
}
