package views

// Headline figures for the dashboards. These are demo values and are not
// derived from the record provider.
var (
	adminStats = []Stat{
		{Title: "Total Customers", Value: "12,345", Change: "+12%"},
		{Title: "Active Leads", Value: "1,234", Change: "+8%"},
		{Title: "Total Accounts", Value: "15,678", Change: "+5%"},
		{Title: "Open Tickets", Value: "89", Change: "-15%"},
	}

	usersByRole = []RoleCount{
		{Role: "Bank Manager", Count: 12, Active: 11, Status: "Active"},
		{Role: "Relationship Manager", Count: 45, Active: 42, Status: "Active"},
		{Role: "Support Agent", Count: 28, Active: 25, Status: "Active"},
		{Role: "Customer", Count: 12345, Active: 11890, Status: "Active"},
	}

	branchStats = []Stat{
		{Title: "Branch Customers", Value: "2,456", Change: "+5.2%"},
		{Title: "Lead Conversion Rate", Value: "68%", Change: "+12%"},
		{Title: "Pending Tasks", Value: "24", Change: "-8%"},
		{Title: "This Month Revenue", Value: "$2.4M", Change: "+15%"},
	}

	rmPerformance = []RMPerformance{
		{Name: "Sarah Wilson", Customers: 145, LeadsConverted: 23, Revenue: "$850K", Rating: 4.8, Status: "Excellent"},
		{Name: "David Miller", Customers: 132, LeadsConverted: 18, Revenue: "$720K", Rating: 4.5, Status: "Good"},
		{Name: "Lisa Chen", Customers: 128, LeadsConverted: 21, Revenue: "$780K", Rating: 4.6, Status: "Good"},
	}

	managerTasks = []Task{
		{ID: "1", Task: "Review loan application - John Smith", Priority: "High", Due: "2024-01-22", Type: "Approval"},
		{ID: "2", Task: "Monthly performance review - Sarah Wilson", Priority: "Medium", Due: "2024-01-23", Type: "Review"},
		{ID: "3", Task: "Customer escalation - Premium account", Priority: "High", Due: "2024-01-21", Type: "Escalation"},
	}

	rmStats = []Stat{
		{Title: "Assigned Customers", Value: "145", Change: "+3"},
		{Title: "Active Leads", Value: "23", Change: "+5"},
		{Title: "Tasks Today", Value: "8", Change: "-2"},
		{Title: "KYC Pending", Value: "12", Change: "+1"},
	}

	leadPipeline = []PipelineStage{
		{Stage: "Prospects", Count: 45, Value: "$2.3M"},
		{Stage: "Qualified", Count: 23, Value: "$1.8M"},
		{Stage: "Negotiation", Count: 12, Value: "$850K"},
		{Stage: "Closed Won", Count: 8, Value: "$420K"},
	}

	recentInteractions = []Interaction{
		{ID: "1", Customer: "John Smith", Type: "Phone Call", Date: "2024-01-20", Notes: "Discussed home loan options", FollowUp: "2024-01-22"},
		{ID: "2", Customer: "Emily Johnson", Type: "Meeting", Date: "2024-01-19", Notes: "Investment portfolio review", FollowUp: "2024-01-25"},
		{ID: "3", Customer: "Michael Brown", Type: "Email", Date: "2024-01-18", Notes: "Sent account statement"},
	}

	dailyTasks = []Task{
		{ID: "1", Task: "Call John Smith about loan application", Priority: "High", Due: "10:00 AM"},
		{ID: "2", Task: "Review Emily Johnson's investment portfolio", Priority: "Medium", Due: "2:00 PM"},
		{ID: "3", Task: "Submit loan documentation for approval", Priority: "High", Due: "4:00 PM", Completed: true},
		{ID: "4", Task: "Prepare for tomorrow's client meetings", Priority: "Low", Due: "5:00 PM"},
	}

	ticketStats = []Stat{
		{Title: "Open Tickets", Value: "23", Change: "+5"},
		{Title: "In Progress", Value: "15", Change: "+3"},
		{Title: "Completed Today", Value: "12", Change: "+8"},
		{Title: "SLA Breaches", Value: "2", Change: "-1"},
	}

	recentConversations = []Conversation{
		{ID: "1", Customer: "John Smith", LastMessage: "Thank you for resolving my banking issue quickly!", Timestamp: "2 minutes ago", Status: "Resolved"},
		{ID: "2", Customer: "Emily Johnson", LastMessage: "Can you help me with my debit card activation?", Timestamp: "15 minutes ago", Status: "Active"},
		{ID: "3", Customer: "Michael Brown", LastMessage: "I need to update my contact information", Timestamp: "1 hour ago", Status: "Pending"},
	}

	accountSummary = AccountSummary{
		SavingsBalance:  125000,
		CurrentBalance:  45000,
		FixedDeposits:   200000,
		LoanOutstanding: 350000,
		CreditCardLimit: 50000,
		CreditCardUsed:  12500,
	}

	accountCards = []AccountCard{
		{Title: "Savings Account", Balance: "$125,000", AccountNumber: "SAV-001234", Type: "Primary"},
		{Title: "Current Account", Balance: "$45,000", AccountNumber: "CUR-001235", Type: "Business"},
		{Title: "Credit Card", Balance: "$12,500 / $50,000", AccountNumber: "****-1234", Type: "Premium"},
	}

	applications = []Application{
		{ID: "1", Type: "Fixed Deposit", Amount: "$50,000", Status: "Approved", AppliedDate: "2024-01-15", ExpectedProcessing: "2024-01-25"},
		{ID: "2", Type: "Home Loan", Amount: "$500,000", Status: "Under Review", AppliedDate: "2024-01-10", ExpectedProcessing: "2024-02-10"},
		{ID: "3", Type: "Personal Loan", Amount: "$25,000", Status: "Pending Documents", AppliedDate: "2024-01-18", ExpectedProcessing: "2024-02-15"},
	}

	customerDocuments = []CustomerDocument{
		{ID: "1", Type: "Passport", Status: "Approved", UploadDate: "2024-01-15", ExpiryDate: "2029-01-15"},
		{ID: "2", Type: "Utility Bill", Status: "Approved", UploadDate: "2024-01-15", ExpiryDate: "2024-04-15"},
		{ID: "3", Type: "Income Certificate", Status: "Pending Review", UploadDate: "2024-01-20", ExpiryDate: "2024-07-20"},
	}
)
