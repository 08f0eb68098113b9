package cli

import (
	"context"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/validation"
)

func (m *Menu) handleLogin(ctx context.Context) {
	req := models.LoginRequest{
		AccountNumber: m.p.readLine("Enter your account number: "),
		PIN:           m.p.readSecret("Enter PIN: "),
	}

	resp, _ := m.accounts.Authenticate(ctx, req)
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}

	printSuccess(m.out, "Logged in successfully")
	m.customerSession(ctx, resp.Data.AccountNumber)
}

func (m *Menu) handleOpenAccount(ctx context.Context) {
	printTitle(m.out, "=== Open Account ===")

	holder, ok := m.p.readValidated("Holder name: ", validation.HolderName)
	if !ok {
		return
	}
	gender, ok := m.p.readValidated("Gender (Male/Female/Other): ", validation.Gender)
	if !ok {
		return
	}
	dob, ok := m.p.readValidated("Date of birth (YYYY-MM-DD): ", validation.Date)
	if !ok {
		return
	}
	address := m.p.readLine("Address: ")
	mobile, ok := m.p.readValidated("Mobile (10 digits): ", validation.Mobile)
	if !ok {
		return
	}
	email, ok := m.p.readValidated("Email: ", validation.Email)
	if !ok {
		return
	}
	accountType, ok := m.p.readValidated("Account type (Savings/Current/Fixed Deposit/Recurring Deposit): ", validation.AccountType)
	if !ok {
		return
	}
	branchCode, ok := m.p.readValidated("Branch code: ", validation.BranchCode)
	if !ok {
		return
	}
	kyc := m.p.readYesNo("KYC completed?")
	pin, ok := m.p.readValidated("Choose a 4-digit PIN: ", validation.PIN)
	if !ok {
		return
	}
	initialDeposit := m.p.readLine("Initial deposit (blank for none): ")

	req := models.OpenAccountRequest{
		Holder:         holder,
		Gender:         gender,
		DOB:            dob,
		Address:        address,
		Mobile:         mobile,
		Email:          email,
		AccountType:    accountType,
		BranchCode:     branchCode,
		KYC:            kyc,
		PIN:            pin,
		InitialDeposit: initialDeposit,
	}

	resp, _ := m.accounts.OpenAccount(ctx, req)
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}

	printSuccess(m.out, "Account created successfully")
	printLine(m.out, "Account number: %s", resp.Data.AccountNumber)
	printLine(m.out, "Opening balance: %s", resp.Data.Balance)
}

func (m *Menu) customerSession(ctx context.Context, accountNumber string) {
	for {
		printTitle(m.out, "=== Account Menu ===")
		printLine(m.out, "1. Deposit")
		printLine(m.out, "2. Withdraw")
		printLine(m.out, "3. Transfer money")
		printLine(m.out, "4. Balance")
		printLine(m.out, "5. History")
		printLine(m.out, "6. Account restrictions")
		printLine(m.out, "7. Logout")

		choice := m.p.readLine("Enter choice: ")
		if choice == "" && m.p.exhausted() {
			return
		}
		switch choice {
		case "1":
			m.handleDeposit(ctx, accountNumber)
		case "2":
			m.handleWithdraw(ctx, accountNumber)
		case "3":
			m.handleTransfer(ctx, accountNumber)
		case "4":
			m.handleBalance(ctx, accountNumber)
		case "5":
			m.handleHistory(ctx, accountNumber)
		case "6":
			m.handleRestrictions(ctx, accountNumber)
		case "7":
			printSuccess(m.out, "Logged out successfully")
			return
		default:
			printError(m.out, "Invalid choice")
		}
	}
}

func (m *Menu) handleDeposit(ctx context.Context, accountNumber string) {
	resp, _ := m.accounts.Deposit(ctx, models.DepositRequest{
		AccountNumber: accountNumber,
		Amount:        m.p.readLine("Enter amount to deposit: "),
	})
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "Deposited %s successfully, balance: %s", resp.Data.Amount, resp.Data.Balance)
}

func (m *Menu) handleWithdraw(ctx context.Context, accountNumber string) {
	resp, _ := m.accounts.Withdraw(ctx, models.WithdrawRequest{
		AccountNumber: accountNumber,
		Amount:        m.p.readLine("Enter the amount to withdraw: "),
	})
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "Withdrew %s successfully, balance: %s", resp.Data.Amount, resp.Data.Balance)
}

func (m *Menu) handleTransfer(ctx context.Context, accountNumber string) {
	resp, _ := m.transfers.Transfer(ctx, models.TransferRequest{
		FromAccountNumber: accountNumber,
		ToAccountNumber:   m.p.readLine("Enter recipient account number: "),
		Amount:            m.p.readLine("Enter amount to transfer: "),
	})
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "Transferred %s to account %s successfully", resp.Data.Amount, resp.Data.ToAccountNumber)
	printLine(m.out, "Reference: %s", resp.Data.Reference)
}

func (m *Menu) handleBalance(ctx context.Context, accountNumber string) {
	resp, _ := m.accounts.GetBalance(ctx, accountNumber)
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printLine(m.out, "Balance: %s", resp.Data.Balance)
}

func (m *Menu) handleHistory(ctx context.Context, accountNumber string) {
	resp, _ := m.accounts.GetHistory(ctx, accountNumber)
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	if len(resp.Data.Entries) == 0 {
		printLine(m.out, "No transaction history")
		return
	}
	for _, entry := range resp.Data.Entries {
		printLine(m.out, "%s", entry)
	}
}

func (m *Menu) handleRestrictions(_ context.Context, _ string) {
	resp, _ := m.accounts.GetRestrictions(m.p.readLine("Account type (Savings/Current/Fixed Deposit/Recurring Deposit): "))
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printTitle(m.out, resp.Data.AccountType+" account rules")
	for _, rule := range resp.Data.Restrictions {
		printLine(m.out, "- %s", rule)
	}
}
