package views

import (
	"github.com/spec-kit/bank-crm/internal/dispatch"
	"github.com/spec-kit/bank-crm/internal/domain"
)

// Page is the view model returned for a dashboard request.
type Page struct {
	View     dispatch.View    `json:"view"`
	Title    string           `json:"title"`
	Identity *domain.Identity `json:"identity,omitempty"`
	Query    string           `json:"query,omitempty"`
	Body     any              `json:"body"`
}

// Stat is a headline KPI card.
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type RoleCount struct {
	Role   string `json:"role"`
	Count  int    `json:"count"`
	Active int    `json:"active"`
	Status string `json:"status"`
}

type RMPerformance struct {
	Name           string  `json:"name"`
	Customers      int     `json:"customers"`
	LeadsConverted int     `json:"leads_converted"`
	Revenue        string  `json:"revenue"`
	Rating         float64 `json:"rating"`
	Status         string  `json:"status"`
}

type Task struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Priority  string `json:"priority"`
	Due       string `json:"due"`
	Type      string `json:"type,omitempty"`
	Completed bool   `json:"completed"`
}

type PipelineStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
	Value string `json:"value"`
}

type Interaction struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
	FollowUp string `json:"follow_up,omitempty"`
}

type Conversation struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	LastMessage string `json:"last_message"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}

type AccountCard struct {
	Title         string `json:"title"`
	Balance       string `json:"balance"`
	AccountNumber string `json:"account_number"`
	Type          string `json:"type"`
}

type AccountSummary struct {
	SavingsBalance  int64 `json:"savings_balance"`
	CurrentBalance  int64 `json:"current_balance"`
	FixedDeposits   int64 `json:"fixed_deposits"`
	LoanOutstanding int64 `json:"loan_outstanding"`
	CreditCardLimit int64 `json:"credit_card_limit"`
	CreditCardUsed  int64 `json:"credit_card_used"`
}

type Application struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Amount             string `json:"amount"`
	Status             string `json:"status"`
	AppliedDate        string `json:"applied_date"`
	ExpectedProcessing string `json:"expected_processing"`
}

type CustomerDocument struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	UploadDate string `json:"upload_date"`
	ExpiryDate string `json:"expiry_date"`
}

type AdminBody struct {
	Stats        []Stat               `json:"stats"`
	UsersByRole  []RoleCount          `json:"users_by_role"`
	ActivityLogs []domain.ActivityLog `json:"activity_logs"`
	Customers    []domain.Customer    `json:"customers"`
	Leads        []domain.Lead        `json:"leads"`
	Tickets      []domain.Ticket      `json:"tickets"`
	Reports      []domain.Report      `json:"reports"`
}

type BankManagerBody struct {
	Branch        string            `json:"branch"`
	Stats         []Stat            `json:"stats"`
	RMPerformance []RMPerformance   `json:"rm_performance"`
	PendingTasks  []Task            `json:"pending_tasks"`
	Customers     []domain.Customer `json:"customers"`
	Leads         []domain.Lead     `json:"leads"`
	Meetings      []domain.Meeting  `json:"meetings"`
}

type RelationshipManagerBody struct {
	Stats        []Stat               `json:"stats"`
	Pipeline     []PipelineStage      `json:"pipeline"`
	Interactions []Interaction        `json:"interactions"`
	Tasks        []Task               `json:"tasks"`
	Customers    []domain.Customer    `json:"customers"`
	Leads        []domain.Lead        `json:"leads"`
	KYCDocuments []domain.KYCDocument `json:"kyc_documents"`
}

type SupportAgentBody struct {
	Stats         []Stat            `json:"stats"`
	Conversations []Conversation    `json:"conversations"`
	Tickets       []domain.Ticket   `json:"tickets"`
	HighPriority  []domain.Ticket   `json:"high_priority"`
	Customers     []domain.Customer `json:"customers"`
}

type CustomerBody struct {
	Summary      AccountSummary       `json:"summary"`
	Accounts     []AccountCard        `json:"accounts"`
	Applications []Application        `json:"applications"`
	Transactions []domain.Transaction `json:"transactions"`
	Documents    []CustomerDocument   `json:"documents"`
}

// NotFoundBody is rendered when the identity maps to no dashboard.
type NotFoundBody struct {
	Message string `json:"message"`
}
