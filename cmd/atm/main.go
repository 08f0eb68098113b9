package main

import (
	"context"
	"log"
	"os"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli"
	"github.com/api-sage/retail-bank-cli/internal/adapter/repository/filestore"
	"github.com/api-sage/retail-bank-cli/internal/config"
	"github.com/api-sage/retail-bank-cli/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountRepo, err := filestore.NewAccountRepository(cfg.AccountsPath)
	if err != nil {
		log.Fatalf("open account store: %v", err)
	}
	adminRepo, err := filestore.NewAdminRepository(cfg.AdminsPath)
	if err != nil {
		log.Fatalf("open admin store: %v", err)
	}

	menu := cli.NewMenu(
		services.NewAccountService(accountRepo, cfg.BranchCode),
		services.NewTransferService(accountRepo),
		services.NewAdminService(adminRepo, accountRepo),
		os.Stdin,
		os.Stdout,
	)

	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("run menu: %v", err)
	}
}
