package overlay

import (
	"fmt"
	"strings"

	"github.com/spec-kit/bank-crm/internal/events"
)

// Kind names an overlay.
type Kind string

const (
	KindAssignLead      Kind = "assign_lead"
	KindCreateTicket    Kind = "create_ticket"
	KindTicketDetail    Kind = "ticket_detail"
	KindManageUsers     Kind = "manage_users"
	KindCustomerProfile Kind = "customer_profile"
	KindLeadProfile     Kind = "lead_profile"
)

// Kinds lists every overlay in a stable order.
var Kinds = []Kind{
	KindAssignLead,
	KindCreateTicket,
	KindTicketDetail,
	KindManageUsers,
	KindCustomerProfile,
	KindLeadProfile,
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

func newInstances() map[Kind]instance {
	return map[Kind]instance{
		KindAssignLead:      bind(assignLeadDefinition()),
		KindCreateTicket:    bind(createTicketDefinition()),
		KindTicketDetail:    bind(ticketDetailDefinition()),
		KindManageUsers:     bind(manageUsersDefinition()),
		KindCustomerProfile: bind(customerProfileDefinition()),
		KindLeadProfile:     bind(leadProfileDefinition()),
	}
}

func freeText[S any](field func(*S) *string) setter[S] {
	return func(state *S, value string) error {
		*field(state) = value
		return nil
	}
}

func choice[S any](field func(*S) *string, allowed []string) setter[S] {
	return func(state *S, value string) error {
		value = strings.TrimSpace(value)
		if err := oneOf(value, allowed); err != nil {
			return err
		}
		*field(state) = value
		return nil
	}
}

func tabAction[P, S any](field func(*S) *string, allowed []string) handler[P, S] {
	return handler[P, S]{run: func(_ P, state *S, input Fields) (*Result, error) {
		tab := input.Get("tab")
		if tab == "" {
			return nil, fmt.Errorf("tab is required: %w", ErrInvalidInput)
		}
		if err := oneOf(tab, allowed); err != nil {
			return nil, err
		}
		*field(state) = tab
		return nil, nil
	}}
}

// assign_lead

type AssignLeadParams struct {
	LeadID   string `json:"lead_id"`
	LeadName string `json:"lead_name"`
}

type AssignLeadState struct {
	RelationshipManagerID string `json:"relationship_manager_id"`
	Priority              string `json:"priority"`
	FollowUp              string `json:"follow_up"`
	Notes                 string `json:"notes"`
}

func assignLeadDefinition() definition[AssignLeadParams, AssignLeadState] {
	fields := map[string]setter[AssignLeadState]{
		"relationship_manager_id": choice(func(s *AssignLeadState) *string { return &s.RelationshipManagerID }, rmIDs()),
		"priority":                choice(func(s *AssignLeadState) *string { return &s.Priority }, values(priorityChoices)),
		"follow_up":               choice(func(s *AssignLeadState) *string { return &s.FollowUp }, values(followUpChoices)),
		"notes":                   freeText(func(s *AssignLeadState) *string { return &s.Notes }),
	}
	return definition[AssignLeadParams, AssignLeadState]{
		kind: KindAssignLead,
		params: func(f Fields) AssignLeadParams {
			return AssignLeadParams{LeadID: f.Get("lead_id"), LeadName: f.Get("lead_name")}
		},
		factory: func(AssignLeadParams) AssignLeadState { return AssignLeadState{} },
		fields:  fields,
		actions: map[string]handler[AssignLeadParams, AssignLeadState]{
			"assign": {terminal: true, run: func(p AssignLeadParams, s *AssignLeadState, input Fields) (*Result, error) {
				if err := apply(KindAssignLead, fields, s, input); err != nil {
					return nil, err
				}
				return &Result{
					Event:   events.EventLeadAssigned,
					Subject: p.LeadID,
					Payload: events.LeadAssignedPayload{
						LeadID:                p.LeadID,
						LeadName:              p.LeadName,
						RelationshipManagerID: s.RelationshipManagerID,
						Priority:              s.Priority,
						FollowUp:              s.FollowUp,
						Notes:                 s.Notes,
					},
				}, nil
			}},
		},
		options: AssignLeadOptions{
			RelationshipManagers: relationshipManagers,
			Priorities:           priorityChoices,
			FollowUps:            followUpChoices,
		},
	}
}

func rmIDs() []string {
	ids := make([]string, 0, len(relationshipManagers))
	for _, rm := range relationshipManagers {
		ids = append(ids, rm.ID)
	}
	return ids
}

// create_ticket

type CreateTicketParams struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
}

type CreateTicketState struct {
	Subject     string `json:"subject"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
	AssignTo    string `json:"assign_to"`
}

func createTicketDefinition() definition[CreateTicketParams, CreateTicketState] {
	assignees := []string{autoAssign}
	for _, agent := range supportAgents {
		assignees = append(assignees, agent.ID)
	}
	fields := map[string]setter[CreateTicketState]{
		"subject":     freeText(func(s *CreateTicketState) *string { return &s.Subject }),
		"category":    choice(func(s *CreateTicketState) *string { return &s.Category }, ticketCategories),
		"priority":    choice(func(s *CreateTicketState) *string { return &s.Priority }, values(priorityChoices)),
		"description": freeText(func(s *CreateTicketState) *string { return &s.Description }),
		"assign_to":   choice(func(s *CreateTicketState) *string { return &s.AssignTo }, assignees),
	}
	return definition[CreateTicketParams, CreateTicketState]{
		kind: KindCreateTicket,
		params: func(f Fields) CreateTicketParams {
			return CreateTicketParams{CustomerID: f.Get("customer_id"), CustomerName: f.Get("customer_name")}
		},
		factory: func(CreateTicketParams) CreateTicketState { return CreateTicketState{} },
		fields:  fields,
		actions: map[string]handler[CreateTicketParams, CreateTicketState]{
			"submit": {terminal: true, run: func(p CreateTicketParams, s *CreateTicketState, input Fields) (*Result, error) {
				if err := apply(KindCreateTicket, fields, s, input); err != nil {
					return nil, err
				}
				return &Result{
					Event:   events.EventTicketCreated,
					Subject: p.CustomerID,
					Payload: events.TicketCreatedPayload{
						CustomerID:   p.CustomerID,
						CustomerName: p.CustomerName,
						Subject:      s.Subject,
						Category:     s.Category,
						Priority:     s.Priority,
						Description:  s.Description,
						AssignTo:     s.AssignTo,
					},
				}, nil
			}},
		},
		options: CreateTicketOptions{
			Categories:    ticketCategories,
			Priorities:    priorityChoices,
			SupportAgents: supportAgents,
		},
	}
}

// ticket_detail

type TicketDetailParams struct {
	TicketID string `json:"ticket_id"`
}

type TicketDetailState struct {
	ActiveTab    string `json:"active_tab"`
	Reply        string `json:"reply"`
	InternalNote string `json:"internal_note"`
	Status       string `json:"status"`
	Comments     string `json:"comments"`
	CloseReason  string `json:"close_reason"`
}

func ticketDetailDefinition() definition[TicketDetailParams, TicketDetailState] {
	tab := func(s *TicketDetailState) *string { return &s.ActiveTab }
	fields := map[string]setter[TicketDetailState]{
		"active_tab":    choice(tab, ticketDetailTabs),
		"reply":         freeText(func(s *TicketDetailState) *string { return &s.Reply }),
		"internal_note": freeText(func(s *TicketDetailState) *string { return &s.InternalNote }),
		"comments":      freeText(func(s *TicketDetailState) *string { return &s.Comments }),
		"close_reason":  choice(func(s *TicketDetailState) *string { return &s.CloseReason }, values(closeReasonChoices)),
	}
	type action = handler[TicketDetailParams, TicketDetailState]
	return definition[TicketDetailParams, TicketDetailState]{
		kind: KindTicketDetail,
		params: func(f Fields) TicketDetailParams {
			return TicketDetailParams{TicketID: f.Get("ticket_id")}
		},
		factory: func(TicketDetailParams) TicketDetailState {
			return TicketDetailState{ActiveTab: "overview", Status: "open"}
		},
		fields: fields,
		actions: map[string]action{
			"tab": tabAction[TicketDetailParams](tab, ticketDetailTabs),
			"reply": {run: func(p TicketDetailParams, s *TicketDetailState, input Fields) (*Result, error) {
				if v, ok := input["reply"]; ok {
					s.Reply = v
				}
				msg := strings.TrimSpace(s.Reply)
				if msg == "" {
					return nil, nil
				}
				s.Reply = ""
				return &Result{
					Event:   events.EventTicketReplied,
					Subject: p.TicketID,
					Payload: events.TicketRepliedPayload{TicketID: p.TicketID, Message: msg},
				}, nil
			}},
			"note": {run: func(p TicketDetailParams, s *TicketDetailState, input Fields) (*Result, error) {
				if v, ok := input["internal_note"]; ok {
					s.InternalNote = v
				}
				note := strings.TrimSpace(s.InternalNote)
				if note == "" {
					return nil, nil
				}
				s.InternalNote = ""
				return &Result{
					Event:   events.EventTicketNoteAdded,
					Subject: p.TicketID,
					Payload: events.TicketNoteAddedPayload{TicketID: p.TicketID, Note: note},
				}, nil
			}},
			"status": {run: func(p TicketDetailParams, s *TicketDetailState, input Fields) (*Result, error) {
				next := input.Get("status")
				if next == "" {
					return nil, fmt.Errorf("status is required: %w", ErrInvalidInput)
				}
				if err := oneOf(next, values(ticketStatusChoices)); err != nil {
					return nil, err
				}
				prev := s.Status
				s.Status = next
				return &Result{
					Event:   events.EventTicketStatusChanged,
					Subject: p.TicketID,
					Payload: events.TicketStatusChangedPayload{TicketID: p.TicketID, OldStatus: prev, NewStatus: next},
				}, nil
			}},
			"close_ticket": {terminal: true, run: func(p TicketDetailParams, s *TicketDetailState, input Fields) (*Result, error) {
				if err := apply(KindTicketDetail, fields, s, input, "status"); err != nil {
					return nil, err
				}
				if status := input.Get("status"); status != "" {
					if err := oneOf(status, values(closingStatusChoices)); err != nil {
						return nil, err
					}
					s.Status = status
				}
				return &Result{
					Event:   events.EventTicketClosed,
					Subject: p.TicketID,
					Payload: events.TicketClosedPayload{
						TicketID:   p.TicketID,
						Status:     s.Status,
						Resolution: strings.TrimSpace(s.Comments),
						Reason:     s.CloseReason,
					},
				}, nil
			}},
		},
		options: TicketDetailOptions{
			Tabs:            ticketDetailTabs,
			Statuses:        ticketStatusChoices,
			ClosingStatuses: closingStatusChoices,
			CloseReasons:    closeReasonChoices,
			Thread:          ticketThread,
			Activity:        ticketActivity,
		},
	}
}

// manage_users

type ManageUsersParams struct{}

type NewUserForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Branch    string `json:"branch"`
}

type ManageUsersState struct {
	ActiveTab   string      `json:"active_tab"`
	ShowAddUser bool        `json:"show_add_user"`
	NewUser     NewUserForm `json:"new_user"`
}

func manageUsersDefinition() definition[ManageUsersParams, ManageUsersState] {
	tab := func(s *ManageUsersState) *string { return &s.ActiveTab }
	fields := map[string]setter[ManageUsersState]{
		"active_tab": choice(tab, manageUsersTabs),
		"show_add_user": func(s *ManageUsersState, value string) error {
			show, err := parseBool(value)
			if err != nil {
				return err
			}
			s.ShowAddUser = show
			if !show {
				s.NewUser = NewUserForm{}
			}
			return nil
		},
		"first_name": freeText(func(s *ManageUsersState) *string { return &s.NewUser.FirstName }),
		"last_name":  freeText(func(s *ManageUsersState) *string { return &s.NewUser.LastName }),
		"email":      freeText(func(s *ManageUsersState) *string { return &s.NewUser.Email }),
		"role":       choice(func(s *ManageUsersState) *string { return &s.NewUser.Role }, values(assignableRoleChoices)),
		"branch":     choice(func(s *ManageUsersState) *string { return &s.NewUser.Branch }, values(branchChoices)),
	}
	type action = handler[ManageUsersParams, ManageUsersState]
	return definition[ManageUsersParams, ManageUsersState]{
		kind:   KindManageUsers,
		params: func(Fields) ManageUsersParams { return ManageUsersParams{} },
		factory: func(ManageUsersParams) ManageUsersState {
			return ManageUsersState{ActiveTab: "users"}
		},
		fields: fields,
		actions: map[string]action{
			"tab": tabAction[ManageUsersParams](tab, manageUsersTabs),
			"toggle_add_user": {run: func(_ ManageUsersParams, s *ManageUsersState, _ Fields) (*Result, error) {
				s.ShowAddUser = !s.ShowAddUser
				if !s.ShowAddUser {
					s.NewUser = NewUserForm{}
				}
				return nil, nil
			}},
			"add_user": {run: func(_ ManageUsersParams, s *ManageUsersState, input Fields) (*Result, error) {
				if err := apply(KindManageUsers, fields, s, input); err != nil {
					return nil, err
				}
				form := s.NewUser
				s.NewUser = NewUserForm{}
				s.ShowAddUser = false
				return &Result{
					Event:   events.EventUserAdded,
					Subject: strings.TrimSpace(form.Email),
					Payload: events.UserAddedPayload{
						FirstName: strings.TrimSpace(form.FirstName),
						LastName:  strings.TrimSpace(form.LastName),
						Email:     strings.TrimSpace(form.Email),
						Role:      form.Role,
						Branch:    form.Branch,
					},
				}, nil
			}},
		},
		options: ManageUsersOptions{
			Tabs:     manageUsersTabs,
			Users:    staffUsers,
			Roles:    rolePermissions,
			NewRoles: assignableRoleChoices,
			Branches: branchChoices,
		},
	}
}

// customer_profile

type CustomerProfileParams struct {
	CustomerID string `json:"customer_id"`
}

type CustomerProfileState struct {
	ActiveTab string `json:"active_tab"`
}

func customerProfileDefinition() definition[CustomerProfileParams, CustomerProfileState] {
	tab := func(s *CustomerProfileState) *string { return &s.ActiveTab }
	return definition[CustomerProfileParams, CustomerProfileState]{
		kind: KindCustomerProfile,
		params: func(f Fields) CustomerProfileParams {
			return CustomerProfileParams{CustomerID: f.Get("customer_id")}
		},
		factory: func(CustomerProfileParams) CustomerProfileState {
			return CustomerProfileState{ActiveTab: "overview"}
		},
		fields: map[string]setter[CustomerProfileState]{
			"active_tab": choice(tab, customerProfileTabs),
		},
		actions: map[string]handler[CustomerProfileParams, CustomerProfileState]{
			"tab": tabAction[CustomerProfileParams](tab, customerProfileTabs),
		},
		options: ProfileOptions{Tabs: customerProfileTabs},
	}
}

// lead_profile

type LeadProfileParams struct {
	LeadID string `json:"lead_id"`
}

type LeadProfileState struct {
	ActiveTab   string `json:"active_tab"`
	ShowConvert bool   `json:"show_convert"`
}

func leadProfileDefinition() definition[LeadProfileParams, LeadProfileState] {
	tab := func(s *LeadProfileState) *string { return &s.ActiveTab }
	return definition[LeadProfileParams, LeadProfileState]{
		kind: KindLeadProfile,
		params: func(f Fields) LeadProfileParams {
			return LeadProfileParams{LeadID: f.Get("lead_id")}
		},
		factory: func(LeadProfileParams) LeadProfileState {
			return LeadProfileState{ActiveTab: "details"}
		},
		fields: map[string]setter[LeadProfileState]{
			"active_tab": choice(tab, leadProfileTabs),
			"show_convert": func(s *LeadProfileState, value string) error {
				show, err := parseBool(value)
				if err != nil {
					return err
				}
				s.ShowConvert = show
				return nil
			},
		},
		actions: map[string]handler[LeadProfileParams, LeadProfileState]{
			"tab": tabAction[LeadProfileParams](tab, leadProfileTabs),
			"convert": {terminal: true, run: func(p LeadProfileParams, _ *LeadProfileState, input Fields) (*Result, error) {
				product := input.Get("product")
				if product == "" {
					return nil, fmt.Errorf("product is required: %w", ErrInvalidInput)
				}
				if err := oneOf(product, conversionProducts); err != nil {
					return nil, err
				}
				return &Result{
					Event:   events.EventLeadConverted,
					Subject: p.LeadID,
					Payload: events.LeadConvertedPayload{LeadID: p.LeadID, Product: product},
				}, nil
			}},
		},
		options: ProfileOptions{Tabs: leadProfileTabs, Products: conversionProducts},
	}
}
