package set_cell_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	cellstatusRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/cellstatus"
)

// UseCase use case установки статуса ячейки и сброса всех override
type UseCase struct {
	cellRepo  CellStatusRepository
	roster    RosterProvider
	txManager TransactionManager
	cache     CacheInvalidator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cellRepo CellStatusRepository,
	roster RosterProvider,
	txManager TransactionManager,
	cache CacheInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		cellRepo:  cellRepo,
		roster:    roster,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// Execute записывает override статуса: для одного юнита либо, при
// UnitID == 0, для всех юнитов даты как одну логическую операцию.
// Групповая запись выполняется в транзакции; кэш resolver-а
// инвалидируется синхронно после успешной записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetCellStatus: unit=%d, date=%s, status=%s",
		req.UnitID, req.Date.Format(domain.DateFormat), req.Status)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetCellStatus: validation failed: %v", err)
		return nil, err
	}

	part := req.Part
	if part == "" {
		part = domain.PartFull
	}

	rec := &domain.CellStatusRecord{
		UnitID: req.UnitID,
		Date:   domain.DateOnly(req.Date),
		Part:   part,
		Status: req.Status,
		Price:  req.Price,
		Reason: req.Reason,
	}

	units, err := uc.roster.Units(ctx)
	if err != nil {
		uc.logger.Error("SetCellStatus: roster lookup failed: %v", err)
		return nil, fmt.Errorf("%w: roster lookup: %v", ErrInternal, err)
	}

	applied := 0

	if req.UnitID == domain.AllUnits {
		unitIDs := make([]int64, 0, len(units))
		for _, unit := range units {
			unitIDs = append(unitIDs, unit.ID)
		}

		// Атомарная групповая запись там, где хранилище её даёт. При
		// частичном сбое без транзакции наружу уходит только агрегатный
		// результат: ErrPartialApply с количеством применённых записей.
		err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
			n, err := uc.cellRepo.SetOverrideAll(txCtx, rec, unitIDs)
			applied = n
			return err
		})
		if err != nil {
			if errors.Is(err, cellstatusRepo.ErrPartialApply) {
				uc.logger.Error("SetCellStatus: bulk write partially applied (%d writes): %v", applied, err)
				return nil, fmt.Errorf("%w: %v", ErrPartialApply, err)
			}
			uc.logger.Error("SetCellStatus: bulk write failed: %v", err)
			return nil, fmt.Errorf("%w: bulk write: %v", ErrInternal, err)
		}
	} else {
		if err := validateUnitExists(units, req.UnitID); err != nil {
			uc.logger.Warn("SetCellStatus: unit %d not in roster", req.UnitID)
			return nil, err
		}

		if err := uc.cellRepo.SetOverride(ctx, rec); err != nil {
			if errors.Is(err, cellstatusRepo.ErrInvalidStatus) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
			}
			uc.logger.Error("SetCellStatus: write failed: %v", err)
			return nil, fmt.Errorf("%w: write: %v", ErrInternal, err)
		}
		applied = 1
	}

	// Read-after-write: инвалидация строго до возврата ответа
	uc.cache.InvalidateDate(rec.Date)

	uc.logger.Info("SetCellStatus: applied %d writes for date=%s", applied, rec.Date.Format(domain.DateFormat))
	return &Response{
		UnitID:  req.UnitID,
		Date:    rec.Date,
		Status:  req.Status,
		Applied: applied,
	}, nil
}

// Reset удаляет все override статусов и возвращает количество удалённых
// записей. Это единственный путь удаления записей Cell Status Store.
func (uc *UseCase) Reset(ctx context.Context) (int64, error) {
	var removed int64

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := uc.cellRepo.ClearAll(txCtx)
		removed = n
		return err
	})
	if err != nil {
		uc.logger.Error("Reset: clear failed: %v", err)
		return 0, fmt.Errorf("%w: clear: %v", ErrInternal, err)
	}

	uc.cache.InvalidateAll()

	uc.logger.Info("Reset: removed %d overrides", removed)
	return removed, nil
}
