package service_interfaces

import (
	"context"

	"github.com/api-sage/retail-bank-cli/internal/adapter/cli/models"
	"github.com/api-sage/retail-bank-cli/internal/commons"
)

type TransferService interface {
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
}
