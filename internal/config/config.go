package config

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultDataDir = "data"
const defaultAccountsFile = "accounts.json"
const defaultAdminsFile = "admins.json"
const defaultBranchCode = "0001"

type Config struct {
	AccountsPath string
	AdminsPath   string
	BranchCode   string
}

func Load() (Config, error) {
	dataDir := strings.TrimSpace(os.Getenv("ATM_DATA_DIR"))
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	accountsFile := strings.TrimSpace(os.Getenv("ATM_ACCOUNTS_FILE"))
	if accountsFile == "" {
		accountsFile = defaultAccountsFile
	}

	adminsFile := strings.TrimSpace(os.Getenv("ATM_ADMINS_FILE"))
	if adminsFile == "" {
		adminsFile = defaultAdminsFile
	}

	branchCode := strings.TrimSpace(os.Getenv("ATM_BRANCH_CODE"))
	if branchCode == "" {
		branchCode = defaultBranchCode
	}

	return Config{
		AccountsPath: filepath.Join(dataDir, accountsFile),
		AdminsPath:   filepath.Join(dataDir, adminsFile),
		BranchCode:   branchCode,
	}, nil
}
