package overlay

import (
	"time"

	"github.com/samber/lo"

	"github.com/spec-kit/bank-crm/internal/domain"
)

const autoAssign = "auto"

// Choice is one entry of a select list.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func values(choices []Choice) []string {
	return lo.Map(choices, func(c Choice, _ int) string { return c.Value })
}

var (
	priorityChoices = []Choice{
		{Value: "high", Label: "High Priority"},
		{Value: "medium", Label: "Medium Priority"},
		{Value: "low", Label: "Low Priority"},
	}

	followUpChoices = []Choice{
		{Value: "today", Label: "Today"},
		{Value: "tomorrow", Label: "Tomorrow"},
		{Value: "this_week", Label: "This Week"},
		{Value: "next_week", Label: "Next Week"},
	}

	relationshipManagers = []domain.RelationshipManager{
		{ID: "rm1", Name: "Sarah Wilson", Workload: domain.WorkloadLight, Specialization: "Home Loans", Performance: "4.8/5", CurrentLeads: 23},
		{ID: "rm2", Name: "David Miller", Workload: domain.WorkloadMedium, Specialization: "Personal Banking", Performance: "4.5/5", CurrentLeads: 32},
		{ID: "rm3", Name: "Lisa Chen", Workload: domain.WorkloadHeavy, Specialization: "Business Banking", Performance: "4.6/5", CurrentLeads: 45},
	}

	ticketCategories = []string{
		"Account Issues",
		"Card Problems",
		"Online Banking",
		"Loan Inquiry",
		"Investment Query",
		"KYC/Documentation",
		"Transaction Issues",
		"Technical Support",
		"General Inquiry",
	}

	supportAgents = []domain.SupportAgent{
		{ID: "agent1", Name: "Mike Support", Specialization: "Technical", Availability: "Available"},
		{ID: "agent2", Name: "Jane Helper", Specialization: "Account Issues", Availability: "Busy"},
		{ID: "agent3", Name: "Tom Resolver", Specialization: "Cards & Payments", Availability: "Available"},
	}

	ticketStatusChoices = []Choice{
		{Value: "open", Label: "Open"},
		{Value: "in_progress", Label: "In Progress"},
		{Value: "pending", Label: "Pending Customer"},
		{Value: "resolved", Label: "Resolved"},
		{Value: "closed", Label: "Closed"},
	}

	closingStatusChoices = []Choice{
		{Value: "resolved", Label: "Resolved - Issue Fixed"},
		{Value: "closed", Label: "Closed - Customer Satisfied"},
		{Value: "escalated", Label: "Escalated - Requires Higher Level"},
		{Value: "duplicate", Label: "Duplicate - Already Addressed"},
	}

	closeReasonChoices = []Choice{
		{Value: "resolved", Label: "Issue Resolved"},
		{Value: "customer_satisfied", Label: "Customer Satisfied"},
		{Value: "no_response", Label: "No Customer Response"},
		{Value: "duplicate", Label: "Duplicate Request"},
		{Value: "invalid", Label: "Invalid Request"},
	}

	ticketDetailTabs    = []string{"overview", "conversation", "activity", "close"}
	manageUsersTabs     = []string{"users", "roles", "audit"}
	customerProfileTabs = []string{"overview", "accounts", "kyc", "interactions", "tasks", "loans", "tickets"}
	leadProfileTabs     = []string{"details", "activity", "followups", "attachments", "conversion"}

	staffUsers = []domain.StaffMember{
		{ID: "1", Name: "John Manager", Email: "john.manager@bank.com", Role: "Bank Manager", Branch: "Downtown", Status: "Active", LastLogin: "2024-01-20"},
		{ID: "2", Name: "Sarah Wilson", Email: "sarah.wilson@bank.com", Role: "Relationship Manager", Branch: "Downtown", Status: "Active", LastLogin: "2024-01-20"},
		{ID: "3", Name: "Mike Support", Email: "mike.support@bank.com", Role: "Support Agent", Branch: "All", Status: "Active", LastLogin: "2024-01-19"},
	}

	rolePermissions = []domain.RolePermissions{
		{ID: "1", Name: "Admin", Permissions: []string{"All"}, Users: 1},
		{ID: "2", Name: "Bank Manager", Permissions: []string{"Branch Management", "User Management", "Reports"}, Users: 3},
		{ID: "3", Name: "Relationship Manager", Permissions: []string{"Customer Management", "Lead Management"}, Users: 12},
		{ID: "4", Name: "Support Agent", Permissions: []string{"Ticket Management", "Customer Support"}, Users: 8},
		{ID: "5", Name: "Customer", Permissions: []string{"Self Service"}, Users: 12345},
	}

	assignableRoleChoices = lo.Map(
		[]domain.Role{domain.RoleBankManager, domain.RoleRelationshipManager, domain.RoleSupportAgent},
		func(r domain.Role, _ int) Choice { return Choice{Value: string(r), Label: r.Label()} },
	)

	branchChoices = []Choice{
		{Value: "downtown", Label: "Downtown Branch"},
		{Value: "uptown", Label: "Uptown Branch"},
		{Value: "suburban", Label: "Suburban Branch"},
	}

	conversionProducts = []string{
		"Savings Account",
		"Current Account",
		"Home Loan",
		"Personal Loan",
		"Credit Card",
		"Investment Account",
	}
)

// AssignLeadOptions lists the choices offered when assigning a lead.
type AssignLeadOptions struct {
	RelationshipManagers []domain.RelationshipManager `json:"relationship_managers"`
	Priorities           []Choice                     `json:"priorities"`
	FollowUps            []Choice                     `json:"follow_ups"`
}

// CreateTicketOptions lists the choices offered when raising a ticket.
type CreateTicketOptions struct {
	Categories    []string              `json:"categories"`
	Priorities    []Choice              `json:"priorities"`
	SupportAgents []domain.SupportAgent `json:"support_agents"`
}

// TicketDetailOptions also carries the sample conversation and audit
// trail shown next to every ticket.
type TicketDetailOptions struct {
	Tabs            []string                   `json:"tabs"`
	Statuses        []Choice                   `json:"statuses"`
	ClosingStatuses []Choice                   `json:"closing_statuses"`
	CloseReasons    []Choice                   `json:"close_reasons"`
	Thread          []domain.TicketThreadEntry `json:"thread"`
	Activity        []domain.TicketActivity    `json:"activity"`
}

type ManageUsersOptions struct {
	Tabs     []string                 `json:"tabs"`
	Users    []domain.StaffMember     `json:"users"`
	Roles    []domain.RolePermissions `json:"roles"`
	NewRoles []Choice                 `json:"new_user_roles"`
	Branches []Choice                 `json:"branches"`
}

type ProfileOptions struct {
	Tabs     []string `json:"tabs"`
	Products []string `json:"products,omitempty"`
}

var (
	ticketThread = []domain.TicketThreadEntry{
		{ID: 1, Sender: domain.ThreadSenderCustomer, Name: "John Smith", Avatar: "JS",
			Message:     `Hi, I'm unable to access my online banking account. I keep getting an error message that says "Invalid credentials" even though I'm sure my password is correct.`,
			Timestamp:   at(20, 9, 0),
			Attachments: []string{"screenshot_error.png"}},
		{ID: 2, Sender: domain.ThreadSenderAgent, Name: "Mike Support", Avatar: "MS",
			Message:     "Hello John, I understand your frustration. Let me help you resolve this issue. Can you please try clearing your browser cache and cookies, then attempt to log in again?",
			Timestamp:   at(20, 9, 15),
			Attachments: []string{}},
		{ID: 3, Sender: domain.ThreadSenderCustomer, Name: "John Smith", Avatar: "JS",
			Message:     "I tried that but still having the same issue. The error persists.",
			Timestamp:   at(20, 10, 30),
			Attachments: []string{}},
		{ID: 4, Sender: domain.ThreadSenderInternal, Name: "Mike Support", Avatar: "MS",
			Message:     "Customer has tried basic troubleshooting. Checking account status in backend system.",
			Timestamp:   at(20, 10, 35),
			Attachments: []string{}},
	}

	ticketActivity = []domain.TicketActivity{
		{Action: "Ticket created", User: "System", Timestamp: at(20, 9, 0)},
		{Action: "Assigned to Mike Support", User: "Auto-Assignment", Timestamp: at(20, 9, 1)},
		{Action: "Status changed to In Progress", User: "Mike Support", Timestamp: at(20, 9, 15)},
		{Action: "Priority escalated to High", User: "Mike Support", Timestamp: at(20, 10, 0)},
		{Action: "Internal note added", User: "Mike Support", Timestamp: at(20, 10, 35)},
	}
)
