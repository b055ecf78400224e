package domain

// StaffMember is a bank employee listed in user administration.
type StaffMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Branch    string `json:"branch"`
	Status    string `json:"status"`
	LastLogin string `json:"last_login"`
}

// Workload buckets a relationship manager's current lead load.
type Workload string

const (
	WorkloadLight  Workload = "Light"
	WorkloadMedium Workload = "Medium"
	WorkloadHeavy  Workload = "Heavy"
)

// RelationshipManager is a lead assignment candidate.
type RelationshipManager struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Workload       Workload `json:"workload"`
	Specialization string   `json:"specialization"`
	Performance    string   `json:"performance"`
	CurrentLeads   int      `json:"current_leads"`
}

// SupportAgent is a ticket assignment candidate.
type SupportAgent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Availability   string `json:"availability"`
}
