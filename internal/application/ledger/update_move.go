package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	ruleset "github.com/tu-usuario/almacen-pro/internal/domain/ledger"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// UpdateMoveInput campos administrativos editables de un movimiento.
// Las líneas y el tipo son inmutables; los punteros nil no tocan el campo.
type UpdateMoveInput struct {
	Reference     *string
	Notes         *string
	Date          *time.Time
	PaymentStatus *string
	PaidAmount    *decimal.Decimal
}

// UpdateMove edita reference/notes/date/estado de pago de un movimiento.
// Aplica la máquina de estados de pago: paid fija paidAmount=total,
// pending lo fija a 0, partial exige 0 < paidAmount < total, y un
// paidAmount >= total promociona a paid aunque se pidiera otro estado.
func (uc *LedgerUseCase) UpdateMove(ctx context.Context, id string, in UpdateMoveInput) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		_ repository.SeriesRepository,
		_ repository.ProductRepository,
	) error {
		move, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if move == nil {
			return domain.ErrNotFound
		}
		if in.Reference != nil {
			move.Reference = *in.Reference
		}
		if in.Notes != nil {
			move.Notes = *in.Notes
		}
		if in.Date != nil {
			move.Date = *in.Date
		}
		if in.PaymentStatus != nil || in.PaidAmount != nil {
			status := move.PaymentStatus
			if in.PaymentStatus != nil {
				status = *in.PaymentStatus
			}
			paid := move.PaidAmount
			if in.PaidAmount != nil {
				paid = *in.PaidAmount
			}
			status, paid, err = ruleset.NormalizePayment(status, paid, move.Total())
			if err != nil {
				return err
			}
			move.PaymentStatus = status
			move.PaidAmount = paid
		}
		move.UpdatedAt = time.Now()
		return movRepo.UpdateHeader(move)
	})
}

// DeleteMove borra un movimiento de forma definitiva, en una transacción y
// en tres pasos: anula el related_move_id de cualquier devolución que lo
// apunte (el enlace se rompe, la devolución queda como registro histórico),
// borra sus líneas y borra la cabecera.
func (uc *LedgerUseCase) DeleteMove(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMoveRepository,
		_ repository.SeriesRepository,
		_ repository.ProductRepository,
	) error {
		move, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if move == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.ClearRelated(id); err != nil {
			return err
		}
		if err := movRepo.DeleteLines(id); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}
