package entity

const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusApproved  = "approved"
	ReportStatusRejected  = "rejected"
	ReportStatusCompleted = "completed"
	ReportStatusDraft     = "draft"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	AnnotationReview     = "review"
	AnnotationCorrection = "correction"
	AnnotationAdditional = "additional"
	AnnotationApproval   = "approval"
	AnnotationRejection  = "rejection"
)

// Report covers both reviewed clinical reports and AI-generated reports;
// the latter carry Content and GeneratedBy instead of findings.
type Report struct {
	ID              string       `json:"id"`
	PatientName     string       `json:"patientName"`
	PatientID       string       `json:"patientId"`
	DoctorName      string       `json:"doctorName,omitempty"`
	Department      string       `json:"department,omitempty"`
	ReportType      string       `json:"reportType"`
	Date            string       `json:"date"`
	Status          string       `json:"status"`
	Priority        string       `json:"priority,omitempty"`
	Summary         string       `json:"summary,omitempty"`
	Findings        string       `json:"findings,omitempty"`
	Recommendations string       `json:"recommendations,omitempty"`
	Annotations     []Annotation `json:"annotations"`
	AIModel         string       `json:"aiModel,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Content         string       `json:"content,omitempty"`
	Timestamp       string       `json:"timestamp,omitempty"`
	GeneratedBy     string       `json:"generatedBy,omitempty"`
}

func (r Report) SearchFields() []string {
	return []string{r.PatientName, r.PatientID, r.DoctorName, r.ReportType, r.Summary}
}

type Annotation struct {
	ID      int    `json:"id"`
	Doctor  string `json:"doctor"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
	Type    string `json:"type"`
}
