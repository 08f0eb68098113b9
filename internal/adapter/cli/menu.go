// Package cli is the interactive presentation layer. Each menu action is a
// plain request/response handler: it collects validated input, calls one
// service operation and renders the envelope. All business rules live below
// the service boundary; nothing here mutates state directly.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/usecase/service_interfaces"
)

type Menu struct {
	accounts  service_interfaces.AccountService
	transfers service_interfaces.TransferService
	admins    service_interfaces.AdminService
	p         *prompter
	out       io.Writer
}

func NewMenu(
	accounts service_interfaces.AccountService,
	transfers service_interfaces.TransferService,
	admins service_interfaces.AdminService,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		accounts:  accounts,
		transfers: transfers,
		admins:    admins,
		p:         newPrompter(in, out),
		out:       out,
	}
}

// Run drives the top-level menu until the user exits. If no administrator
// exists yet the supreme-admin bootstrap runs first.
func (m *Menu) Run(ctx context.Context) error {
	if err := m.bootstrapSupremeAdmin(ctx); err != nil {
		return err
	}

	for {
		printTitle(m.out, "=== Retail Bank ===")
		printLine(m.out, "1. Login")
		printLine(m.out, "2. Open account")
		printLine(m.out, "3. Admin login")
		printLine(m.out, "4. Exit")

		choice := m.p.readLine("Enter your choice: ")
		if choice == "" && m.p.exhausted() {
			printLine(m.out, "Session end")
			return nil
		}
		switch choice {
		case "1":
			m.handleLogin(ctx)
		case "2":
			m.handleOpenAccount(ctx)
		case "3":
			m.handleAdminLogin(ctx)
		case "4":
			printLine(m.out, "Session end")
			return nil
		default:
			printError(m.out, "Invalid choice")
		}
	}
}

func (m *Menu) bootstrapSupremeAdmin(ctx context.Context) error {
	hasAdmin, err := m.admins.HasAnyAdmin(ctx)
	if err != nil {
		return err
	}
	if hasAdmin {
		return nil
	}

	printTitle(m.out, "No admin found. Create Supreme Admin")
	for {
		username := m.p.readLine("Supreme admin username: ")
		if username == "" && m.p.exhausted() {
			return errors.New("input ended before an admin was created")
		}
		req := models.CreateAdminRequest{
			Username: username,
			Password: m.p.readSecret("Supreme admin password: "),
			Role:     "supreme",
		}

		resp, _ := m.admins.CreateAdmin(ctx, req)
		if resp.Success {
			printSuccess(m.out, "Supreme Admin created successfully")
			return nil
		}
		printFailure(m.out, resp)
	}
}
