package set_cell_status

import (
	"context"

	setCellStatus "github.com/m04kA/SMC-CalendarService/internal/usecase/set_cell_status"
)

type SetCellStatusUseCase interface {
	Execute(ctx context.Context, req *setCellStatus.Request) (*setCellStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
