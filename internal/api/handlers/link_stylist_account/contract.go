package link_stylist_account

import (
	"context"

	linkStylistAccount "github.com/m04kA/SMC-SalonBooking/internal/usecase/link_stylist_account"
)

type LinkStylistAccountUseCase interface {
	Execute(ctx context.Context, req *linkStylistAccount.Request) (*linkStylistAccount.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
