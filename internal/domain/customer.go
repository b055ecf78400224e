package domain

import "time"

// Customer is a bank account holder.
type Customer struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	AccountNumber       string    `json:"account_number"`
	Branch              string    `json:"branch"`
	RelationshipManager string    `json:"relationship_manager"`
	AccountType         string    `json:"account_type"`
	Balance             int64     `json:"balance"`
	Status              string    `json:"status"`
	KYCStatus           string    `json:"kyc_status"`
	JoinDate            time.Time `json:"join_date"`
	LastActivity        time.Time `json:"last_activity"`
}

// Transaction is a single ledger movement on a customer account.
type Transaction struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"account_number"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Debit         int64     `json:"debit"`
	Credit        int64     `json:"credit"`
	Balance       int64     `json:"balance"`
	Type          string    `json:"type"`
}

// KYCDocument is an identity document submitted by a customer.
// ReviewDate is nil while the document awaits review.
type KYCDocument struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	DocumentType string     `json:"document_type"`
	Status       string     `json:"status"`
	UploadDate   time.Time  `json:"upload_date"`
	ReviewDate   *time.Time `json:"review_date"`
}

// Meeting is a scheduled appointment between a customer and the bank.
type Meeting struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	CustomerID   string    `json:"customer_id"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Purpose      string    `json:"purpose"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
}
