package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/views"
)

const dateLayout = "2006-01-02"

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, color.New(color.FgCyan, color.OpBold).Render(title))
}

func money(v int64) string {
	return "$" + strconv.FormatInt(v, 10)
}

// renderPage prints the dashboard body as a series of tables.
func renderPage(w io.Writer, page views.Page) {
	fmt.Fprintln(w, color.New(color.BgBlack, color.FgGreen).Render("  ====== "+page.Title+" ======"))
	if page.Identity != nil {
		fmt.Fprintf(w, "%s <%s> as %s\n", page.Identity.Name, page.Identity.Email, page.Identity.Role.Label())
	}
	if page.Query != "" {
		fmt.Fprintf(w, "filter: %q\n", page.Query)
	}

	switch body := page.Body.(type) {
	case views.AdminBody:
		renderStats(w, body.Stats)
		section(w, "Users by role")
		t := newTable(w, "Role", "Count", "Active", "Status")
		for _, r := range body.UsersByRole {
			t.Append([]string{r.Role, strconv.Itoa(r.Count), strconv.Itoa(r.Active), r.Status})
		}
		t.Render()
		section(w, "Recent activity")
		t = newTable(w, "User", "Action", "Details", "Type")
		for _, l := range body.ActivityLogs {
			t.Append([]string{l.User, l.Action, l.Details, string(l.Type)})
		}
		t.Render()
		renderCustomers(w, body.Customers)
		renderLeads(w, body.Leads)
		renderTickets(w, "Tickets", body.Tickets)
		section(w, "Reports")
		t = newTable(w, "Name", "Type", "Format", "Size")
		for _, r := range body.Reports {
			t.Append([]string{r.Name, r.Type, r.Format, r.Size})
		}
		t.Render()
	case views.BankManagerBody:
		fmt.Fprintf(w, "branch: %s\n", body.Branch)
		renderStats(w, body.Stats)
		section(w, "Relationship manager performance")
		t := newTable(w, "Name", "Customers", "Converted", "Revenue", "Rating")
		for _, p := range body.RMPerformance {
			t.Append([]string{p.Name, strconv.Itoa(p.Customers), strconv.Itoa(p.LeadsConverted), p.Revenue,
				strconv.FormatFloat(p.Rating, 'f', 1, 64)})
		}
		t.Render()
		renderTasks(w, body.PendingTasks)
		renderCustomers(w, body.Customers)
		renderLeads(w, body.Leads)
		renderMeetings(w, body.Meetings)
	case views.RelationshipManagerBody:
		renderStats(w, body.Stats)
		section(w, "Pipeline")
		t := newTable(w, "Stage", "Count", "Value")
		for _, s := range body.Pipeline {
			t.Append([]string{s.Stage, strconv.Itoa(s.Count), s.Value})
		}
		t.Render()
		renderTasks(w, body.Tasks)
		renderCustomers(w, body.Customers)
		renderLeads(w, body.Leads)
	case views.SupportAgentBody:
		renderStats(w, body.Stats)
		renderTickets(w, "High priority", body.HighPriority)
		renderTickets(w, "Tickets", body.Tickets)
		section(w, "Live conversations")
		t := newTable(w, "Customer", "Last message", "Status")
		for _, c := range body.Conversations {
			t.Append([]string{c.Customer, c.LastMessage, c.Status})
		}
		t.Render()
	case views.CustomerBody:
		section(w, "Accounts")
		t := newTable(w, "Account", "Number", "Balance")
		for _, a := range body.Accounts {
			t.Append([]string{a.Title, a.AccountNumber, a.Balance})
		}
		t.Render()
		section(w, "Transactions")
		t = newTable(w, "Date", "Description", "Debit", "Credit", "Balance")
		for _, tx := range body.Transactions {
			t.Append([]string{tx.Date.Format(dateLayout), tx.Description, money(tx.Debit), money(tx.Credit), money(tx.Balance)})
		}
		t.Render()
		section(w, "Documents")
		t = newTable(w, "Type", "Status", "Expires")
		for _, d := range body.Documents {
			t.Append([]string{d.Type, d.Status, d.ExpiryDate})
		}
		t.Render()
	case views.NotFoundBody:
		fmt.Fprintln(w, color.Red.Sprint(body.Message))
	}
}

func renderStats(w io.Writer, stats []views.Stat) {
	t := newTable(w, "Metric", "Value", "Change")
	for _, s := range stats {
		t.Append([]string{s.Title, s.Value, s.Change})
	}
	section(w, "Overview")
	t.Render()
}

func renderCustomers(w io.Writer, customers []domain.Customer) {
	section(w, "Customers")
	t := newTable(w, "ID", "Name", "Account", "Branch", "Balance", "KYC")
	for _, c := range customers {
		t.Append([]string{c.ID, c.Name, c.AccountType, c.Branch, money(c.Balance), c.KYCStatus})
	}
	t.Render()
}

func renderLeads(w io.Writer, leads []domain.Lead) {
	section(w, "Leads")
	t := newTable(w, "ID", "Name", "Product", "Status", "Assigned", "Value")
	for _, l := range leads {
		t.Append([]string{l.ID, l.Name, l.Product, string(l.Status), l.AssignedTo, money(l.Value)})
	}
	t.Render()
}

func renderTickets(w io.Writer, title string, tickets []domain.Ticket) {
	section(w, title)
	t := newTable(w, "ID", "Customer", "Subject", "Priority", "Status", "Assigned")
	for _, tk := range tickets {
		t.Append([]string{tk.ID, tk.CustomerName, tk.Subject, string(tk.Priority), string(tk.Status), tk.AssignedTo})
	}
	t.Render()
}

func renderTasks(w io.Writer, tasks []views.Task) {
	section(w, "Tasks")
	t := newTable(w, "Task", "Priority", "Due", "Done")
	for _, task := range tasks {
		t.Append([]string{task.Task, task.Priority, task.Due, strconv.FormatBool(task.Completed)})
	}
	t.Render()
}

func renderMeetings(w io.Writer, meetings []domain.Meeting) {
	section(w, "Meetings")
	t := newTable(w, "Customer", "Date", "Time", "Purpose", "Status")
	for _, m := range meetings {
		t.Append([]string{m.CustomerName, m.Date.Format(dateLayout), m.Time, m.Purpose, m.Status})
	}
	t.Render()
}

// renderTranscript prints chat messages, user lines in cyan and bot lines in green.
func renderTranscript(w io.Writer, messages []domain.ChatMessage) {
	section(w, "Assistant")
	for _, m := range messages {
		stamp := m.Timestamp.Format("15:04:05")
		switch m.Sender {
		case domain.ChatSenderUser:
			fmt.Fprintf(w, "%s %s %s\n", stamp, color.Cyan.Sprint("you:"), m.Text)
		default:
			fmt.Fprintf(w, "%s %s %s\n", stamp, color.Green.Sprint("bot:"), m.Text)
		}
	}
}
