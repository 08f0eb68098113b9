package cli

import (
	"context"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
)

func (m *Menu) handleAdminLogin(ctx context.Context) {
	req := models.AdminLoginRequest{
		Username: m.p.readLine("Enter username: "),
		Password: m.p.readSecret("Enter password: "),
	}

	resp, _ := m.admins.Authenticate(ctx, req)
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}

	printSuccess(m.out, "Logged in successfully")
	m.adminSession(ctx)
}

func (m *Menu) adminSession(ctx context.Context) {
	for {
		printTitle(m.out, "=== Admin Menu ===")
		printLine(m.out, "1. Create admin account")
		printLine(m.out, "2. View all accounts")
		printLine(m.out, "3. Delete account")
		printLine(m.out, "4. Update holder name")
		printLine(m.out, "5. Reset user PIN")
		printLine(m.out, "6. Change account status")
		printLine(m.out, "7. Logout")

		choice := m.p.readLine("Enter choice: ")
		if choice == "" && m.p.exhausted() {
			return
		}
		switch choice {
		case "1":
			m.handleCreateAdmin(ctx)
		case "2":
			m.handleListAccounts(ctx)
		case "3":
			m.handleDeleteAccount(ctx)
		case "4":
			m.handleRenameHolder(ctx)
		case "5":
			m.handleResetPIN(ctx)
		case "6":
			m.handleSetStatus(ctx)
		case "7":
			printSuccess(m.out, "Logged out successfully")
			return
		default:
			printError(m.out, "Invalid choice")
		}
	}
}

func (m *Menu) handleCreateAdmin(ctx context.Context) {
	req := models.CreateAdminRequest{
		Username: m.p.readLine("Admin username: "),
		Password: m.p.readSecret("Admin password: "),
		Role:     "standard",
	}

	resp, _ := m.admins.CreateAdmin(ctx, req)
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "Admin account created successfully")
}

func (m *Menu) handleListAccounts(ctx context.Context) {
	resp, _ := m.admins.ListAccounts(ctx)
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	if len(*resp.Data) == 0 {
		printLine(m.out, "No accounts found")
		return
	}
	for _, acc := range *resp.Data {
		printLine(m.out, "Account no. %s, Holder: %s, Type: %s, Status: %s, Balance: %s",
			acc.AccountNumber, acc.Holder, acc.AccountType, acc.Status, acc.Balance)
	}
}

func (m *Menu) handleDeleteAccount(ctx context.Context) {
	accountNumber := m.p.readLine("Enter account number to delete: ")
	if !m.p.readYesNo("Delete account " + accountNumber + " permanently?") {
		return
	}

	resp, _ := m.admins.DeleteAccount(ctx, models.DeleteAccountRequest{AccountNumber: accountNumber})
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "Account %s deleted successfully", resp.Data.AccountNumber)
}

func (m *Menu) handleRenameHolder(ctx context.Context) {
	resp, _ := m.admins.RenameHolder(ctx, models.RenameHolderRequest{
		AccountNumber: m.p.readLine("Enter account number: "),
		NewHolder:     m.p.readLine("Enter new holder name: "),
	})
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "Holder name updated successfully for account %s", resp.Data.AccountNumber)
}

func (m *Menu) handleResetPIN(ctx context.Context) {
	resp, _ := m.admins.ResetPIN(ctx, models.ResetPINRequest{
		AccountNumber: m.p.readLine("Enter account number: "),
		NewPIN:        m.p.readSecret("Enter new PIN: "),
	})
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "PIN reset successfully for account %s", resp.Data.AccountNumber)
}

func (m *Menu) handleSetStatus(ctx context.Context) {
	resp, _ := m.admins.SetStatus(ctx, models.SetStatusRequest{
		AccountNumber: m.p.readLine("Enter account number: "),
		Status:        m.p.readLine("New status (Active/Inactive/Suspended/Closed/Frozen): "),
	})
	if !resp.Success {
		printFailure(m.out, resp)
		return
	}
	printSuccess(m.out, "Account %s status set to %s", resp.Data.AccountNumber, resp.Data.Status)
}
