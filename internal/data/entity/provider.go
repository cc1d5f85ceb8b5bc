package entity

type Provider struct {
	Base
	UserID            int64   `db:"user_id"`
	CompanyName       string  `db:"company_name"`
	PhoneNumber       *string `db:"phone_number"`
	CompanyLogoPath   *string `db:"company_logo_path"`
	BankName          string  `db:"bank_name"`
	BankAccountNumber string  `db:"bank_account_number"`
	BankAccountName   string  `db:"bank_account_name"`
}
